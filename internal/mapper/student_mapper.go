package mapper

import (
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/model"
)

type StudentMapper struct{}

func NewStudentMapper() *StudentMapper {
	return &StudentMapper{}
}

func (m *StudentMapper) ToModel(e *entity.Student) *model.Student {
	if e == nil {
		return nil
	}
	return &model.Student{
		Id:             e.Id,
		Email:          e.Email,
		FullName:       e.FullName,
		Phone:          e.Phone,
		PasswordHash:   e.PasswordHash,
		RoomNumber:     e.RoomNumber,
		HostelBlock:    e.HostelBlock,
		MessPreference: e.MessPreference,
		JoinDate:       e.JoinDate,
		DueAmount:      e.DueAmount,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *StudentMapper) ToEntity(mo *model.Student) *entity.Student {
	if mo == nil {
		return nil
	}
	return &entity.Student{
		Id:             mo.Id,
		Email:          mo.Email,
		FullName:       mo.FullName,
		Phone:          mo.Phone,
		PasswordHash:   mo.PasswordHash,
		RoomNumber:     mo.RoomNumber,
		HostelBlock:    mo.HostelBlock,
		MessPreference: mo.MessPreference,
		JoinDate:       mo.JoinDate,
		DueAmount:      mo.DueAmount,
		CreatedAt:      mo.CreatedAt,
		UpdatedAt:      mo.UpdatedAt,
	}
}

func (m *StudentMapper) ToEntities(models []*model.Student) []*entity.Student {
	entities := make([]*entity.Student, len(models))
	for i, mo := range models {
		entities[i] = m.ToEntity(mo)
	}
	return entities
}

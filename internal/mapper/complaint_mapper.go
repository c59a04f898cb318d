package mapper

import (
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/model"
)

type ComplaintMapper struct{}

func NewComplaintMapper() *ComplaintMapper {
	return &ComplaintMapper{}
}

func (m *ComplaintMapper) ToModel(e *entity.Complaint) *model.Complaint {
	if e == nil {
		return nil
	}
	return &model.Complaint{
		Id:          e.Id,
		StudentId:   e.StudentId,
		Title:       e.Title,
		Description: e.Description,
		Category:    string(e.Category),
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ComplaintMapper) ToEntity(mo *model.Complaint) *entity.Complaint {
	if mo == nil {
		return nil
	}
	updatedAt := mo.UpdatedAt
	return &entity.Complaint{
		Id:          mo.Id,
		StudentId:   mo.StudentId,
		Title:       mo.Title,
		Description: mo.Description,
		Category:    entity.ComplaintCategory(mo.Category),
		Status:      mo.Status,
		CreatedAt:   mo.CreatedAt,
		UpdatedAt:   &updatedAt,
	}
}

func (m *ComplaintMapper) ToEntities(models []*model.Complaint) []*entity.Complaint {
	entities := make([]*entity.Complaint, len(models))
	for i, mo := range models {
		entities[i] = m.ToEntity(mo)
	}
	return entities
}

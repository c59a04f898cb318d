package mapper

import (
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/model"

	"gorm.io/datatypes"
)

type RoomMapper struct{}

func NewRoomMapper() *RoomMapper {
	return &RoomMapper{}
}

func (m *RoomMapper) ToModel(e *entity.Room) *model.Room {
	if e == nil {
		return nil
	}
	return &model.Room{
		Id:        e.Id,
		Number:    e.Number,
		Block:     e.Block,
		Type:      e.Type,
		Condition: e.Condition,
		Amenities: datatypes.NewJSONSlice(e.Amenities),
		Capacity:  e.Capacity,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *RoomMapper) ToEntity(mo *model.Room) *entity.Room {
	if mo == nil {
		return nil
	}
	return &entity.Room{
		Id:        mo.Id,
		Number:    mo.Number,
		Block:     mo.Block,
		Type:      mo.Type,
		Condition: mo.Condition,
		Amenities: []string(mo.Amenities),
		Capacity:  mo.Capacity,
		CreatedAt: mo.CreatedAt,
		UpdatedAt: mo.UpdatedAt,
	}
}

func (m *RoomMapper) ChangeRequestToModel(e *entity.RoomChangeRequest) *model.RoomChangeRequest {
	if e == nil {
		return nil
	}
	return &model.RoomChangeRequest{
		Id:              e.Id,
		StudentId:       e.StudentId,
		CurrentRoom:     e.CurrentRoom,
		DesiredRoomType: e.DesiredRoomType,
		Reason:          e.Reason,
		Status:          e.Status,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *RoomMapper) ChangeRequestToEntity(mo *model.RoomChangeRequest) *entity.RoomChangeRequest {
	if mo == nil {
		return nil
	}
	updatedAt := mo.UpdatedAt
	return &entity.RoomChangeRequest{
		Id:              mo.Id,
		StudentId:       mo.StudentId,
		CurrentRoom:     mo.CurrentRoom,
		DesiredRoomType: mo.DesiredRoomType,
		Reason:          mo.Reason,
		Status:          mo.Status,
		CreatedAt:       mo.CreatedAt,
		UpdatedAt:       &updatedAt,
	}
}

func (m *RoomMapper) ChangeRequestsToEntities(models []*model.RoomChangeRequest) []*entity.RoomChangeRequest {
	entities := make([]*entity.RoomChangeRequest, len(models))
	for i, mo := range models {
		entities[i] = m.ChangeRequestToEntity(mo)
	}
	return entities
}

func (m *RoomMapper) MaintenanceToModel(e *entity.MaintenanceRequest) *model.MaintenanceRequest {
	if e == nil {
		return nil
	}
	return &model.MaintenanceRequest{
		Id:          e.Id,
		StudentId:   e.StudentId,
		RoomNumber:  e.RoomNumber,
		Description: e.Description,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *RoomMapper) MaintenanceToEntity(mo *model.MaintenanceRequest) *entity.MaintenanceRequest {
	if mo == nil {
		return nil
	}
	updatedAt := mo.UpdatedAt
	return &entity.MaintenanceRequest{
		Id:          mo.Id,
		StudentId:   mo.StudentId,
		RoomNumber:  mo.RoomNumber,
		Description: mo.Description,
		Status:      mo.Status,
		CreatedAt:   mo.CreatedAt,
		UpdatedAt:   &updatedAt,
	}
}

func (m *RoomMapper) MaintenanceToEntities(models []*model.MaintenanceRequest) []*entity.MaintenanceRequest {
	entities := make([]*entity.MaintenanceRequest, len(models))
	for i, mo := range models {
		entities[i] = m.MaintenanceToEntity(mo)
	}
	return entities
}

package mapper

import (
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/model"

	"gorm.io/datatypes"
)

type MessMapper struct{}

func NewMessMapper() *MessMapper {
	return &MessMapper{}
}

func (m *MessMapper) MenuToModel(e *entity.MessMenu) *model.MessMenu {
	if e == nil {
		return nil
	}
	return &model.MessMenu{
		Id:        e.Id,
		Day:       e.Day,
		Breakfast: datatypes.NewJSONSlice(e.Breakfast),
		Lunch:     datatypes.NewJSONSlice(e.Lunch),
		Snacks:    datatypes.NewJSONSlice(e.Snacks),
		Dinner:    datatypes.NewJSONSlice(e.Dinner),
	}
}

func (m *MessMapper) MenuToEntity(mo *model.MessMenu) *entity.MessMenu {
	if mo == nil {
		return nil
	}
	return &entity.MessMenu{
		Id:        mo.Id,
		Day:       mo.Day,
		Breakfast: []string(mo.Breakfast),
		Lunch:     []string(mo.Lunch),
		Snacks:    []string(mo.Snacks),
		Dinner:    []string(mo.Dinner),
		UpdatedAt: mo.UpdatedAt,
	}
}

func (m *MessMapper) MenusToEntities(models []*model.MessMenu) []*entity.MessMenu {
	entities := make([]*entity.MessMenu, len(models))
	for i, mo := range models {
		entities[i] = m.MenuToEntity(mo)
	}
	return entities
}

func (m *MessMapper) FeedbackToModel(e *entity.MessFeedback) *model.MessFeedback {
	if e == nil {
		return nil
	}
	return &model.MessFeedback{
		Id:        e.Id,
		StudentId: e.StudentId,
		Meal:      e.Meal,
		Rating:    e.Rating,
		Comments:  e.Comments,
		CreatedAt: e.CreatedAt,
	}
}

func (m *MessMapper) FeedbackToEntity(mo *model.MessFeedback) *entity.MessFeedback {
	if mo == nil {
		return nil
	}
	return &entity.MessFeedback{
		Id:        mo.Id,
		StudentId: mo.StudentId,
		Meal:      mo.Meal,
		Rating:    mo.Rating,
		Comments:  mo.Comments,
		CreatedAt: mo.CreatedAt,
	}
}

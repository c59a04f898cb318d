package mapper

import (
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/model"
)

type FaqMapper struct{}

func NewFaqMapper() *FaqMapper {
	return &FaqMapper{}
}

func (m *FaqMapper) ToModel(e *entity.Faq) *model.Faq {
	if e == nil {
		return nil
	}
	return &model.Faq{
		Id:        e.Id,
		Category:  e.Category,
		Question:  e.Question,
		Answer:    e.Answer,
		SortOrder: e.SortOrder,
	}
}

func (m *FaqMapper) ToEntity(mo *model.Faq) *entity.Faq {
	if mo == nil {
		return nil
	}
	return &entity.Faq{
		Id:        mo.Id,
		Category:  mo.Category,
		Question:  mo.Question,
		Answer:    mo.Answer,
		SortOrder: mo.SortOrder,
	}
}

func (m *FaqMapper) ToEntities(models []*model.Faq) []*entity.Faq {
	entities := make([]*entity.Faq, len(models))
	for i, mo := range models {
		entities[i] = m.ToEntity(mo)
	}
	return entities
}

package mapper

import (
	"hostelnexus-be/internal/entity"
	"hostelnexus-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) SessionToModel(e *entity.ChatSession) *model.ChatSession {
	if e == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        e.Id,
		StudentId: e.StudentId,
		Title:     e.Title,
		CreatedAt: e.CreatedAt,
	}
}

func (m *ChatMapper) SessionToEntity(mo *model.ChatSession) *entity.ChatSession {
	if mo == nil {
		return nil
	}
	updatedAt := mo.UpdatedAt
	return &entity.ChatSession{
		Id:        mo.Id,
		StudentId: mo.StudentId,
		Title:     mo.Title,
		CreatedAt: mo.CreatedAt,
		UpdatedAt: &updatedAt,
	}
}

func (m *ChatMapper) SessionsToEntities(models []*model.ChatSession) []*entity.ChatSession {
	entities := make([]*entity.ChatSession, len(models))
	for i, mo := range models {
		entities[i] = m.SessionToEntity(mo)
	}
	return entities
}

func (m *ChatMapper) MessageToModel(e *entity.ChatMessage) *model.ChatMessage {
	if e == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:               e.Id,
		ChatSessionId:    e.ChatSessionId,
		Chat:             e.Chat,
		Role:             e.Role,
		ComplaintFlagged: e.ComplaintFlagged,
		CreatedAt:        e.CreatedAt,
	}
}

func (m *ChatMapper) MessageToEntity(mo *model.ChatMessage) *entity.ChatMessage {
	if mo == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:               mo.Id,
		ChatSessionId:    mo.ChatSessionId,
		Chat:             mo.Chat,
		Role:             mo.Role,
		ComplaintFlagged: mo.ComplaintFlagged,
		CreatedAt:        mo.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(models []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(models))
	for i, mo := range models {
		entities[i] = m.MessageToEntity(mo)
	}
	return entities
}

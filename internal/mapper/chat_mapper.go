package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) SessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:            s.Id,
		SessionId:     s.SessionId,
		UserId:        s.UserId,
		UserName:      s.UserName,
		UserEmail:     s.UserEmail,
		Source:        s.Source,
		CreatedAt:     s.CreatedAt,
		LastMessageAt: s.LastMessageAt,
	}
}

func (m *ChatMapper) SessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:            s.Id,
		SessionId:     s.SessionId,
		UserId:        s.UserId,
		UserName:      s.UserName,
		UserEmail:     s.UserEmail,
		Source:        s.Source,
		CreatedAt:     s.CreatedAt,
		LastMessageAt: s.LastMessageAt,
	}
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		Role:        msg.Role,
		Content:     msg.Content,
		ResponseId:  msg.ResponseId,
		ContextData: json.RawMessage(msg.ContextData),
		Sources:     json.RawMessage(msg.Sources),
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:          msg.Id,
		SessionId:   msg.SessionId,
		Role:        msg.Role,
		Content:     msg.Content,
		ResponseId:  msg.ResponseId,
		ContextData: datatypes.JSON(msg.ContextData),
		Sources:     datatypes.JSON(msg.Sources),
		CreatedAt:   msg.CreatedAt,
	}
}

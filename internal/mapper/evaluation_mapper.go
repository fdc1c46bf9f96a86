package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/model"
)

type EvaluationMapper struct{}

func NewEvaluationMapper() *EvaluationMapper {
	return &EvaluationMapper{}
}

func (m *EvaluationMapper) SessionToEntity(s *model.EvaluationSession) *entity.EvaluationSession {
	if s == nil {
		return nil
	}

	return &entity.EvaluationSession{
		Id:               s.Id,
		SessionId:        s.SessionId,
		UserId:           s.UserId,
		UserName:         s.UserName,
		DocumentType:     s.DocumentType,
		OrganizationId:   s.OrganizationId,
		GuidelineId:      s.GuidelineId,
		SessionTitle:     s.SessionTitle,
		ProposalText:     s.ProposalText,
		ProposalUrl:      s.ProposalUrl,
		TorText:          s.TorText,
		TorUrl:           s.TorUrl,
		InternalAnalysis: json.RawMessage(s.InternalAnalysis),
		ExternalAnalysis: json.RawMessage(s.ExternalAnalysis),
		DeltaAnalysis:    json.RawMessage(s.DeltaAnalysis),
		OverallScore:     s.OverallScore,
		ProcessingTime:   s.ProcessingTime,
		CreatedAt:        s.CreatedAt,
		CompletedAt:      s.CompletedAt,
	}
}

func (m *EvaluationMapper) SessionToModel(s *entity.EvaluationSession) *model.EvaluationSession {
	if s == nil {
		return nil
	}

	return &model.EvaluationSession{
		Id:               s.Id,
		SessionId:        s.SessionId,
		UserId:           s.UserId,
		UserName:         s.UserName,
		DocumentType:     s.DocumentType,
		OrganizationId:   s.OrganizationId,
		GuidelineId:      s.GuidelineId,
		SessionTitle:     s.SessionTitle,
		ProposalText:     s.ProposalText,
		ProposalUrl:      s.ProposalUrl,
		TorText:          s.TorText,
		TorUrl:           s.TorUrl,
		InternalAnalysis: datatypes.JSON(s.InternalAnalysis),
		ExternalAnalysis: datatypes.JSON(s.ExternalAnalysis),
		DeltaAnalysis:    datatypes.JSON(s.DeltaAnalysis),
		OverallScore:     s.OverallScore,
		ProcessingTime:   s.ProcessingTime,
		CreatedAt:        s.CreatedAt,
		CompletedAt:      s.CompletedAt,
	}
}

func (m *EvaluationMapper) FollowupToEntity(f *model.EvaluationFollowup) *entity.EvaluationFollowup {
	if f == nil {
		return nil
	}

	return &entity.EvaluationFollowup{
		Id:        f.Id,
		SessionId: f.SessionId,
		UserId:    f.UserId,
		Query:     f.Query,
		Answer:    f.Answer,
		Section:   f.Section,
		CreatedAt: f.CreatedAt,
	}
}

func (m *EvaluationMapper) FollowupToModel(f *entity.EvaluationFollowup) *model.EvaluationFollowup {
	if f == nil {
		return nil
	}

	return &model.EvaluationFollowup{
		Id:        f.Id,
		SessionId: f.SessionId,
		UserId:    f.UserId,
		Query:     f.Query,
		Answer:    f.Answer,
		Section:   f.Section,
		CreatedAt: f.CreatedAt,
	}
}

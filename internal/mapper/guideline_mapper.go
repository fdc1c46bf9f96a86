package mapper

import (
	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/model"
)

type GuidelineMapper struct{}

func NewGuidelineMapper() *GuidelineMapper {
	return &GuidelineMapper{}
}

func (m *GuidelineMapper) ToEntity(g *model.OrganizationGuideline) *entity.OrganizationGuideline {
	if g == nil {
		return nil
	}

	return &entity.OrganizationGuideline{
		Id:             g.Id,
		GuidelineId:    g.GuidelineId,
		OrganizationId: g.OrganizationId,
		GuidelineName:  g.GuidelineName,
		GuidelineText:  g.GuidelineText,
		Description:    g.Description,
		IsActive:       g.IsActive,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func (m *GuidelineMapper) ToModel(g *entity.OrganizationGuideline) *model.OrganizationGuideline {
	if g == nil {
		return nil
	}

	return &model.OrganizationGuideline{
		Id:             g.Id,
		GuidelineId:    g.GuidelineId,
		OrganizationId: g.OrganizationId,
		GuidelineName:  g.GuidelineName,
		GuidelineText:  g.GuidelineText,
		Description:    g.Description,
		IsActive:       g.IsActive,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

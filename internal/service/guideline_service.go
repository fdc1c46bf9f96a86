package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/entity"
	"proposal-eval-be/internal/pkg/apperrors"
	"proposal-eval-be/internal/repository/specification"
	"proposal-eval-be/internal/repository/unitofwork"
)

type IGuidelineService interface {
	Create(ctx context.Context, req *dto.GuidelineRequest) (*dto.GuidelineResponse, error)
	Update(ctx context.Context, guidelineId string, req *dto.GuidelineRequest) (*dto.GuidelineResponse, error)
	Deactivate(ctx context.Context, guidelineId string) error
	List(ctx context.Context, organizationId string) (*dto.GuidelinesResponse, error)
}

type guidelineService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGuidelineService(uowFactory unitofwork.RepositoryFactory) IGuidelineService {
	return &guidelineService{uowFactory: uowFactory}
}

func (s *guidelineService) Create(ctx context.Context, req *dto.GuidelineRequest) (*dto.GuidelineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	guideline := entity.OrganizationGuideline{
		Id:             uuid.New(),
		GuidelineId:    uuid.NewString(),
		OrganizationId: req.OrganizationID,
		GuidelineName:  req.GuidelineName,
		GuidelineText:  req.GuidelineText,
		Description:    req.Description,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	if err := uow.GuidelineRepository().Create(ctx, &guideline); err != nil {
		return nil, err
	}

	return guidelineToResponse(&guideline), nil
}

func (s *guidelineService) Update(ctx context.Context, guidelineId string, req *dto.GuidelineRequest) (*dto.GuidelineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	guideline, err := uow.GuidelineRepository().FindOne(ctx,
		specification.ByGuidelineID{GuidelineID: guidelineId},
	)
	if err != nil {
		return nil, err
	}
	if guideline == nil {
		return nil, apperrors.Newf(apperrors.KindNotFound, "guideline %s not found", guidelineId)
	}

	now := time.Now()
	guideline.GuidelineName = req.GuidelineName
	guideline.GuidelineText = req.GuidelineText
	guideline.Description = req.Description
	guideline.UpdatedAt = &now

	if err := uow.GuidelineRepository().Update(ctx, guideline); err != nil {
		return nil, err
	}

	return guidelineToResponse(guideline), nil
}

func (s *guidelineService) Deactivate(ctx context.Context, guidelineId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	guideline, err := uow.GuidelineRepository().FindOne(ctx,
		specification.ByGuidelineID{GuidelineID: guidelineId},
	)
	if err != nil {
		return err
	}
	if guideline == nil {
		return apperrors.Newf(apperrors.KindNotFound, "guideline %s not found", guidelineId)
	}

	return uow.GuidelineRepository().Deactivate(ctx, guidelineId)
}

func (s *guidelineService) List(ctx context.Context, organizationId string) (*dto.GuidelinesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.GuidelineRepository().Count(ctx,
		specification.ByOrganizationID{OrganizationID: organizationId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}

	guidelines, err := uow.GuidelineRepository().FindAll(ctx,
		specification.ByOrganizationID{OrganizationID: organizationId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := dto.GuidelinesResponse{
		OrganizationID: organizationId,
		Guidelines:     make([]dto.GuidelineResponse, 0, len(guidelines)),
		TotalCount:     total,
	}
	for _, guideline := range guidelines {
		res.Guidelines = append(res.Guidelines, *guidelineToResponse(guideline))
	}

	return &res, nil
}

func guidelineToResponse(g *entity.OrganizationGuideline) *dto.GuidelineResponse {
	return &dto.GuidelineResponse{
		GuidelineID:    g.GuidelineId,
		OrganizationID: g.OrganizationId,
		GuidelineName:  g.GuidelineName,
		GuidelineText:  g.GuidelineText,
		Description:    g.Description,
		IsActive:       g.IsActive,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

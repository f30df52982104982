package services

import (
	"context"

	"legendscr/internal/mappers"
	"legendscr/internal/models/request_models"
	"legendscr/internal/models/response_models"
	"legendscr/internal/repositories"
)

type LegendServiceInterface interface {
	GetAll(ctx context.Context) ([]response_models.LegendResponse, error)
	GetByID(ctx context.Context, id string) (*response_models.LegendResponse, error)
	GetByDistrictID(ctx context.Context, districtID int) ([]response_models.LegendResponse, error)
	Create(ctx context.Context, req request_models.CreateLegendRequest) (*response_models.LegendResponse, error)
}

type LegendService struct {
	legendRepository repositories.LegendRepository
}

func NewLegendService(legendRepository repositories.LegendRepository) LegendServiceInterface {
	return &LegendService{legendRepository: legendRepository}
}

func (s *LegendService) GetAll(ctx context.Context) ([]response_models.LegendResponse, error) {
	legends, err := s.legendRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(legends, mappers.LegendToResponse), nil
}

func (s *LegendService) GetByID(ctx context.Context, id string) (*response_models.LegendResponse, error) {
	legend, err := s.legendRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mappers.LegendToResponse(*legend)
	return &resp, nil
}

func (s *LegendService) GetByDistrictID(ctx context.Context, districtID int) ([]response_models.LegendResponse, error) {
	legends, err := s.legendRepository.GetByDistrictID(ctx, districtID)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(legends, mappers.LegendToResponse), nil
}

func (s *LegendService) Create(ctx context.Context, req request_models.CreateLegendRequest) (*response_models.LegendResponse, error) {
	legend := mappers.LegendCreateToModel(req)
	if err := s.legendRepository.Create(ctx, &legend); err != nil {
		return nil, err
	}
	resp := mappers.LegendToResponse(legend)
	return &resp, nil
}

package services

import (
	"context"

	"legendscr/internal/mappers"
	"legendscr/internal/models/response_models"
	"legendscr/internal/repositories"
)

type DistrictServiceInterface interface {
	GetAll(ctx context.Context) ([]response_models.DistrictResponse, error)
	GetByID(ctx context.Context, id int) (*response_models.DistrictResponse, error)
	GetByCanton(ctx context.Context, cantonName string) ([]response_models.DistrictResponse, error)
	GetByCantonID(ctx context.Context, cantonID int) ([]response_models.DistrictResponse, error)
}

type DistrictService struct {
	districtRepository repositories.DistrictRepository
}

func NewDistrictService(districtRepository repositories.DistrictRepository) DistrictServiceInterface {
	return &DistrictService{
		districtRepository: districtRepository,
	}
}

func (s *DistrictService) GetAll(ctx context.Context) ([]response_models.DistrictResponse, error) {
	districts, err := s.districtRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(districts, mappers.DistrictToResponse), nil
}

func (s *DistrictService) GetByID(ctx context.Context, id int) (*response_models.DistrictResponse, error) {
	district, err := s.districtRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mappers.DistrictToResponse(*district)
	return &resp, nil
}

func (s *DistrictService) GetByCanton(ctx context.Context, cantonName string) ([]response_models.DistrictResponse, error) {
	districts, err := s.districtRepository.GetByCantonName(ctx, cantonName)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(districts, mappers.DistrictToResponse), nil
}

func (s *DistrictService) GetByCantonID(ctx context.Context, cantonID int) ([]response_models.DistrictResponse, error) {
	districts, err := s.districtRepository.GetByCantonID(ctx, cantonID)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(districts, mappers.DistrictToResponse), nil
}

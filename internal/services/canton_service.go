package services

import (
	"context"

	"legendscr/internal/mappers"
	"legendscr/internal/models/response_models"
	"legendscr/internal/repositories"
)

type CantonServiceInterface interface {
	GetAll(ctx context.Context) ([]response_models.CantonResponse, error)
	GetByID(ctx context.Context, id int) (*response_models.CantonResponse, error)
	GetByProvince(ctx context.Context, provinceName string) ([]response_models.CantonResponse, error)
	GetByProvinceID(ctx context.Context, provinceID int) ([]response_models.CantonResponse, error)
}

type CantonService struct {
	cantonRepository repositories.CantonRepository
}

func NewCantonService(cantonRepository repositories.CantonRepository) CantonServiceInterface {
	return &CantonService{
		cantonRepository: cantonRepository,
	}
}

func (s *CantonService) GetAll(ctx context.Context) ([]response_models.CantonResponse, error) {
	cantons, err := s.cantonRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(cantons, mappers.CantonToResponse), nil
}

func (s *CantonService) GetByID(ctx context.Context, id int) (*response_models.CantonResponse, error) {
	canton, err := s.cantonRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mappers.CantonToResponse(*canton)
	return &resp, nil
}

func (s *CantonService) GetByProvince(ctx context.Context, provinceName string) ([]response_models.CantonResponse, error) {
	cantons, err := s.cantonRepository.GetByProvinceName(ctx, provinceName)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(cantons, mappers.CantonToResponse), nil
}

func (s *CantonService) GetByProvinceID(ctx context.Context, provinceID int) ([]response_models.CantonResponse, error) {
	cantons, err := s.cantonRepository.GetByProvinceID(ctx, provinceID)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(cantons, mappers.CantonToResponse), nil
}

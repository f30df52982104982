package services

import (
	"context"

	"legendscr/internal/mappers"
	"legendscr/internal/models/response_models"
	"legendscr/internal/repositories"
)

type ProvinceServiceInterface interface {
	GetAll(ctx context.Context) ([]response_models.ProvinceResponse, error)
	GetByID(ctx context.Context, id int) (*response_models.ProvinceResponse, error)
}

type ProvinceService struct {
	provinceRepository repositories.ProvinceRepository
}

func NewProvinceService(provinceRepository repositories.ProvinceRepository) ProvinceServiceInterface {
	return &ProvinceService{
		provinceRepository: provinceRepository,
	}
}

func (p *ProvinceService) GetAll(ctx context.Context) ([]response_models.ProvinceResponse, error) {
	provinces, err := p.provinceRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(provinces, mappers.ProvinceToResponse), nil
}

func (p *ProvinceService) GetByID(ctx context.Context, id int) (*response_models.ProvinceResponse, error) {
	province, err := p.provinceRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mappers.ProvinceToResponse(*province)
	return &resp, nil
}

package services

import (
	"context"

	"legendscr/internal/mappers"
	"legendscr/internal/models/response_models"
	"legendscr/internal/repositories"
)

type CategoryServiceInterface interface {
	GetAll(ctx context.Context) ([]response_models.CategoryResponse, error)
}

type CategoryService struct {
	categoryRepository repositories.CategoryRepository
}

func NewCategoryService(categoryRepository repositories.CategoryRepository) CategoryServiceInterface {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mappers.MapAll(categories, mappers.CategoryToResponse), nil
}

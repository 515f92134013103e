package services

import (
	"context"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	cats, err := s.Repo.List(ctx)
	if err != nil {
		return nil, wrapStore(err, "categories not found")
	}
	return cats, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*entity.Category, error) {
	cat, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStore(err, "category not found")
	}
	return cat, nil
}

func (s *CategoryService) Create(ctx context.Context, cat *entity.Category) error {
	if err := s.Repo.Create(ctx, cat); err != nil {
		return wrapStore(err, "category not found")
	}
	return nil
}

func (s *CategoryService) Update(ctx context.Context, cat *entity.Category) error {
	if _, err := s.Repo.FindByID(ctx, cat.ID); err != nil {
		return wrapStore(err, "category not found")
	}
	if err := s.Repo.Update(ctx, cat); err != nil {
		return wrapStore(err, "category not found")
	}
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return wrapStore(err, "category not found")
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return wrapStore(err, "category not found")
	}
	return nil
}

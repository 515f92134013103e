package services

import (
	"context"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(ctx context.Context) ([]entity.MenuItem, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, wrapStore(err, "menu items not found")
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapStore(err, "menu item not found")
	}
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, item *entity.MenuItem) error {
	if err := s.Repo.Create(ctx, item); err != nil {
		return wrapStore(err, "menu item not found")
	}
	return nil
}

func (s *MenuService) Update(ctx context.Context, item *entity.MenuItem) error {
	if _, err := s.Repo.FindByID(ctx, item.ID); err != nil {
		return wrapStore(err, "menu item not found")
	}
	if err := s.Repo.Update(ctx, item); err != nil {
		return wrapStore(err, "menu item not found")
	}
	return nil
}

func (s *MenuService) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*entity.MenuItem, error) {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return nil, wrapStore(err, "menu item not found")
	}
	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, wrapStore(err, "menu item not found")
	}
	return s.Get(ctx, id)
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return wrapStore(err, "menu item not found")
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return wrapStore(err, "menu item not found")
	}
	return nil
}

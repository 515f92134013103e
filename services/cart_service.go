package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/pkg/apperr"
	"github.com/shahmilc/LittleLemonAPI/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

func (s *CartService) List(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	lines, err := s.CartRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, wrapStore(err, "cart not found")
	}
	return lines, nil
}

// Add snapshots the menu item's current price into the line. A repeated add
// of the same item merges into the existing line.
func (s *CartService) Add(ctx context.Context, userID uint, in *AddToCartIn) error {
	if in.Quantity < 1 {
		return apperr.Validation("quantity must be at least 1")
	}

	m, err := s.MenuRepo.FindByID(ctx, in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("menu item not found")
		}
		return wrapStore(err, "menu item not found")
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   in.Quantity,
		UnitPrice:  m.Price,
		Price:      m.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, line)
	})
	if err != nil {
		return wrapStore(err, "cart not found")
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.CartRepo.ClearForUser(tx, userID)
		return err
	})
	if err != nil {
		return wrapStore(err, "cart not found")
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ListForUser(ctx context.Context, userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := r.DB.WithContext(ctx).
		Preload("MenuItem").
		Where("user_id = ?", userID).
		Find(&lines).Error
	return lines, err
}

// UpsertLine merges a repeated add of the same menu item into the existing
// line, recomputing price = unit_price * quantity.
func (r *CartRepository) UpsertLine(tx *gorm.DB, line *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", line.UserID, line.MenuItemID).
		First(&exist).Error
	if err == nil {
		exist.Quantity += line.Quantity
		exist.Price = exist.UnitPrice.Mul(decimal.NewFromInt(int64(exist.Quantity)))
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return tx.Create(line).Error
}

// ClearForUser deletes every line of the user's cart and reports how many
// rows went away. Idempotent: clearing an empty cart deletes zero rows.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Where("user_id = ?", userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// ListForUserTx reads cart lines inside a running transaction so checkout
// sees a consistent snapshot.
func (r *CartRepository) ListForUserTx(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := tx.Where("user_id = ?", userID).Find(&lines).Error
	return lines, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) SaveTotal(tx *gorm.DB, o *entity.Order) error {
	return tx.Model(&entity.Order{}).Where("id = ?", o.ID).Update("total", o.Total).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).Preload("OrderItems").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.WithContext(ctx).Preload("OrderItems").
		Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.WithContext(ctx).Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForDeliveryCrew(ctx context.Context, crewID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.WithContext(ctx).Preload("OrderItems").
		Where("delivery_crew_id = ?", crewID).
		Order("id DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard flips the status only when the order is still in the
// expected state; RowsAffected 0 means a lost race or an illegal transition.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// Replace overwrites the mutable fields (status, delivery crew). Total and
// date stay untouched.
func (r *OrderRepository) Replace(tx *gorm.DB, orderID uint, status entity.OrderStatus, deliveryCrewID *uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{
			"status":           status,
			"delivery_crew_id": deliveryCrewID,
		}).Error
}

func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}

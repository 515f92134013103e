package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/pkg/apperr"
	"github.com/shahmilc/LittleLemonAPI/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// Checkout converts the caller's cart into an order inside one transaction:
// read lines, create the order and its items with frozen prices, persist the
// summed total, then delete the cart. If any step fails nothing is kept.
//
// The delete is guarded on rows affected: if a concurrent checkout already
// consumed part of the cart the counts disagree and the whole transaction
// rolls back, so one cart can never become two orders.
func (s *OrderService) Checkout(ctx context.Context, userID uint) (*entity.Order, error) {
	var out *entity.Order

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListForUserTx(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.EmptyCart()
		}

		order := &entity.Order{
			UserID: userID,
			Status: entity.OrderStatusPending,
			Total:  decimal.Zero,
			Date:   time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}

		for _, line := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Price:      line.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Total = order.Total.Add(line.Price)
			order.OrderItems = append(order.OrderItems, oi)
		}

		if err := s.Repo.SaveTotal(tx, order); err != nil {
			return err
		}

		affected, err := s.CartRepo.ClearForUser(tx, userID)
		if err != nil {
			return err
		}
		if affected != int64(len(lines)) {
			return apperr.Validation("cart changed during checkout")
		}

		out = order
		return nil
	})
	if err != nil {
		return nil, wrapStore(err, "cart not found")
	}
	return out, nil
}

// ListVisible applies the per-role visibility filter: Managers see all
// orders, delivery crew their assigned ones, everyone else their own.
func (s *OrderService) ListVisible(ctx context.Context, userID uint, roles entity.RoleSet) ([]entity.Order, error) {
	var (
		orders []entity.Order
		err    error
	)
	switch {
	case roles.Manager:
		orders, err = s.Repo.ListAll(ctx)
	case roles.DeliveryCrew:
		orders, err = s.Repo.ListForDeliveryCrew(ctx, userID)
	default:
		orders, err = s.Repo.ListForUser(ctx, userID)
	}
	if err != nil {
		return nil, wrapStore(err, "orders not found")
	}
	return orders, nil
}

// GetVisible retrieves one order. Access outside the caller's visibility is
// a permission failure, not a 404: existence is not hidden.
func (s *OrderService) GetVisible(ctx context.Context, userID uint, roles entity.RoleSet, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, wrapStore(err, "order not found")
	}

	switch {
	case roles.Manager:
	case o.UserID == userID:
	case o.DeliveryCrewID != nil && *o.DeliveryCrewID == userID:
	default:
		return nil, apperr.PermissionDenied("order does not belong to user")
	}
	return o, nil
}

func (s *OrderService) Delete(ctx context.Context, orderID uint) error {
	if _, err := s.Repo.GetOrder(ctx, orderID); err != nil {
		return wrapStore(err, "order not found")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrder(tx, orderID)
	})
	if err != nil {
		return wrapStore(err, "order not found")
	}
	return nil
}

package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/pkg/apperr"
)

// UpdateStatus is the partial-update path (Managers and delivery crew).
// Only the status field is applied, whatever else the request carried, and
// the state machine is enforced with a compare-and-swap guard.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !to.Valid() {
		return nil, apperr.Validation("unknown order status")
	}

	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, wrapStore(err, "order not found")
	}
	if !o.Status.CanTransitionTo(to) {
		return nil, apperr.Validation("invalid status transition")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Validation("order status changed concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, wrapStore(err, "order not found")
	}

	o.Status = to
	return o, nil
}

// Replace is the Manager-only full replace: status and the delivery-crew
// assignee are the mutable fields, total and date never change.
func (s *OrderService) Replace(ctx context.Context, orderID uint, status entity.OrderStatus, deliveryCrewID *uint) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperr.Validation("unknown order status")
	}

	if _, err := s.Repo.GetOrder(ctx, orderID); err != nil {
		return nil, wrapStore(err, "order not found")
	}

	if deliveryCrewID != nil {
		if _, err := s.UserRepo.FindByID(ctx, *deliveryCrewID); err != nil {
			return nil, wrapStore(err, "delivery crew user not found")
		}
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Repo.Replace(tx, orderID, status, deliveryCrewID)
	})
	if err != nil {
		return nil, wrapStore(err, "order not found")
	}

	o, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, wrapStore(err, "order not found")
	}
	return o, nil
}

package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shahmilc/LittleLemonAPI/entity"
	"github.com/shahmilc/LittleLemonAPI/pkg/apperr"
	"github.com/shahmilc/LittleLemonAPI/repository"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
	)
}

func fillCart(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()
	cartSvc := newCartService(db)
	a := seedMenuItem(t, db, "Grilled Fish", "10.00")
	b := seedMenuItem(t, db, "Lemonade", "5.50")
	require.NoError(t, cartSvc.Add(context.Background(), userID, &AddToCartIn{MenuItemID: a.ID, Quantity: 2}))
	require.NoError(t, cartSvc.Add(context.Background(), userID, &AddToCartIn{MenuItemID: b.ID, Quantity: 1}))
}

func TestCheckoutComputesTotalAndClearsCart(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID)

	order, err := svc.Checkout(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.Total.Equal(mustDecimal("25.50")), "total %s", order.Total)
	require.Len(t, order.OrderItems, 2)

	sum := mustDecimal("0")
	for _, oi := range order.OrderItems {
		sum = sum.Add(oi.Price)
	}
	assert.True(t, order.Total.Equal(sum))

	var prices []string
	for _, oi := range order.OrderItems {
		prices = append(prices, oi.Price.StringFixed(2))
	}
	assert.ElementsMatch(t, []string{"20.00", "5.50"}, prices)

	var remaining int64
	require.NoError(t, db.Model(&entity.CartItem{}).Where("user_id = ?", user.ID).Count(&remaining).Error)
	assert.Zero(t, remaining, "cart must be empty after checkout")
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")

	_, err := svc.Checkout(context.Background(), user.ID)
	require.Error(t, err)
	code, msg := apperr.StatusOf(err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, msg, "empty cart")

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count, "no order may exist after a failed checkout")
}

func TestOrderItemPricesFrozenAfterRepricing(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	cartSvc := newCartService(db)
	user := seedUser(t, db, "alice")
	item := seedMenuItem(t, db, "Feta Plate", "8.00")
	require.NoError(t, cartSvc.Add(context.Background(), user.ID, &AddToCartIn{MenuItemID: item.ID, Quantity: 1}))

	order, err := svc.Checkout(context.Background(), user.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Update("price", mustDecimal("99.00")).Error)

	got, err := svc.GetVisible(context.Background(), user.ID, entity.RoleSet{}, order.ID)
	require.NoError(t, err)
	require.Len(t, got.OrderItems, 1)
	assert.True(t, got.OrderItems[0].UnitPrice.Equal(mustDecimal("8.00")))
	assert.True(t, got.OrderItems[0].Price.Equal(mustDecimal("8.00")))
	assert.True(t, got.Total.Equal(mustDecimal("8.00")))
}

func TestConcurrentCheckoutProducesOneOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Checkout(context.Background(), user.ID)
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			failures++
		}
	}
	assert.Equal(t, 1, failures, "exactly one of two simultaneous checkouts may win")

	var orders []entity.Order
	require.NoError(t, db.Preload("OrderItems").Find(&orders).Error)
	require.Len(t, orders, 1, "one cart can never become two orders")
	assert.NotEmpty(t, orders[0].OrderItems, "the winning order must carry items")

	var remaining int64
	require.NoError(t, db.Model(&entity.CartItem{}).Where("user_id = ?", user.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestVisibilityRules(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol") // delivery crew
	fillCart(t, db, alice.ID)

	order, err := svc.Checkout(context.Background(), alice.ID)
	require.NoError(t, err)

	// owner reads own order
	_, err = svc.GetVisible(context.Background(), alice.ID, entity.RoleSet{}, order.ID)
	require.NoError(t, err)

	// another customer is denied, not told it doesn't exist
	_, err = svc.GetVisible(context.Background(), bob.ID, entity.RoleSet{}, order.ID)
	require.Error(t, err)
	code, _ := apperr.StatusOf(err)
	assert.Equal(t, http.StatusForbidden, code)

	// unassigned crew is denied
	_, err = svc.GetVisible(context.Background(), carol.ID, entity.RoleSet{DeliveryCrew: true}, order.ID)
	require.Error(t, err)

	// manager sees everything
	_, err = svc.GetVisible(context.Background(), bob.ID, entity.RoleSet{Manager: true}, order.ID)
	require.NoError(t, err)

	// assignment flips crew visibility
	_, err = svc.Replace(context.Background(), order.ID, entity.OrderStatusPending, &carol.ID)
	require.NoError(t, err)
	_, err = svc.GetVisible(context.Background(), carol.ID, entity.RoleSet{DeliveryCrew: true}, order.ID)
	require.NoError(t, err)

	// lists filter instead of erroring
	visible, err := svc.ListVisible(context.Background(), bob.ID, entity.RoleSet{})
	require.NoError(t, err)
	assert.Empty(t, visible)

	visible, err = svc.ListVisible(context.Background(), carol.ID, entity.RoleSet{DeliveryCrew: true})
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	visible, err = svc.ListVisible(context.Background(), bob.ID, entity.RoleSet{Manager: true})
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestUpdateStatusChangesOnlyStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID)

	order, err := svc.Checkout(context.Background(), user.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), order.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)

	var reloaded entity.Order
	require.NoError(t, db.Preload("OrderItems").First(&reloaded, order.ID).Error)
	assert.Equal(t, entity.OrderStatusDelivered, reloaded.Status)
	assert.True(t, reloaded.Total.Equal(order.Total), "total must not change on status update")
	assert.Equal(t, order.UserID, reloaded.UserID)
	assert.WithinDuration(t, order.Date, reloaded.Date, time.Second)
	assert.Len(t, reloaded.OrderItems, len(order.OrderItems))
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID)

	order, err := svc.Checkout(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)

	// no transition leads out of DELIVERED
	_, err = svc.UpdateStatus(context.Background(), order.ID, entity.OrderStatusPending)
	require.Error(t, err)
	code, _ := apperr.StatusOf(err)
	assert.Equal(t, http.StatusBadRequest, code)

	_, err = svc.UpdateStatus(context.Background(), order.ID, entity.OrderStatus("SHIPPED"))
	require.Error(t, err)
}

func TestReplaceAssignsCrewAndKeepsTotal(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	crew := seedUser(t, db, "carol")
	fillCart(t, db, user.ID)

	order, err := svc.Checkout(context.Background(), user.ID)
	require.NoError(t, err)

	replaced, err := svc.Replace(context.Background(), order.ID, entity.OrderStatusDelivered, &crew.ID)
	require.NoError(t, err)
	require.NotNil(t, replaced.DeliveryCrewID)
	assert.Equal(t, crew.ID, *replaced.DeliveryCrewID)
	assert.Equal(t, entity.OrderStatusDelivered, replaced.Status)
	assert.True(t, replaced.Total.Equal(order.Total))

	unknown := uint(9999)
	_, err = svc.Replace(context.Background(), order.ID, entity.OrderStatusPending, &unknown)
	require.Error(t, err)
	code, _ := apperr.StatusOf(err)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeleteCascadesOrderItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID)

	order, err := svc.Checkout(context.Background(), user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), order.ID))

	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)

	err = svc.Delete(context.Background(), order.ID)
	require.Error(t, err)
	code, _ := apperr.StatusOf(err)
	assert.Equal(t, http.StatusNotFound, code)
}

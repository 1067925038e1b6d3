package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	user := registerTestUser(t, db, "buyer@example.com")

	order, err := CreateOrder(ctx, db, CreateOrderRequest{
		UserID:        user.User.ID,
		DealID:        1,
		Quantity:      5,
		CustomerName:  "Buyer",
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Create order: %v", err)
	}

	if !strings.HasPrefix(order.ID, "DH") {
		t.Errorf("Expected DH prefix, got %s", order.ID)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Expected status pending, got %s", order.Status)
	}
	if order.Deal != "50% OFF" || order.Store != "Pizza Palace" {
		t.Errorf("Order should snapshot the deal, got %q at %q", order.Deal, order.Store)
	}

	if !order.BasePrice.Equal(decimal.NewFromInt(250)) {
		t.Errorf("Expected base price 250, got %s", order.BasePrice)
	}
	if !order.Total.Equal(decimal.NewFromInt(125)) {
		t.Errorf("Expected total 125, got %s", order.Total)
	}
	if !order.Savings.Equal(order.Discount) {
		t.Errorf("Savings %s should equal discount %s", order.Savings, order.Discount)
	}

	if stock := dealStock(t, db, 1); stock != 95 {
		t.Errorf("Expected stock 95, got %d", stock)
	}

	u, err := GetUser(ctx, db, user.User.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{order.ID}, u.Orders)
}

func TestCreateOrderFractionalDiscount(t *testing.T) {
	db := database.New()
	deal := createTestDeal(t, db, 120, 17, 10)

	order, err := CreateOrder(context.Background(), db, CreateOrderRequest{DealID: deal.ID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, "360", order.BasePrice.String())
	assert.Equal(t, "61.2", order.Discount.String())
	assert.Equal(t, "298.8", order.Total.String())
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	db := database.New()
	ctx := context.Background()
	deal := createTestDeal(t, db, 100, 0, 5)

	_, err := CreateOrder(ctx, db, CreateOrderRequest{DealID: deal.ID, Quantity: 10})
	if !errors.Is(err, database.ErrInsufficientStock) {
		t.Errorf("Expected insufficient stock error, got: %v", err)
	}

	if stock := dealStock(t, db, deal.ID); stock != 5 {
		t.Errorf("Stock should remain unchanged at 5, got %d", stock)
	}

	stats, err := Stats(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOrders)
}

func TestCreateOrderRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := CreateOrder(ctx, db, CreateOrderRequest{DealID: 1, Quantity: 0})
	assert.ErrorIs(t, err, database.ErrInvalidQuantity)

	_, err = CreateOrder(ctx, db, CreateOrderRequest{DealID: 999, Quantity: 1})
	assert.ErrorIs(t, err, database.ErrDealNotFound)

	// Unknown users may still order; nothing is linked.
	order, err := CreateOrder(ctx, db, CreateOrderRequest{UserID: 77, DealID: 1, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(77), order.UserID)
}

func TestConcurrentOrderCreation(t *testing.T) {
	db := database.New()
	ctx := context.Background()
	deal := createTestDeal(t, db, 100, 0, 20)

	concurrency := 15
	var wg sync.WaitGroup
	results := make(chan error, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := CreateOrder(ctx, db, CreateOrderRequest{DealID: deal.ID, Quantity: 2})
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	successCount := 0
	insufficientStockCount := 0

	for err := range results {
		switch {
		case err == nil:
			successCount++
		case errors.Is(err, database.ErrInsufficientStock):
			insufficientStockCount++
		default:
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if successCount != 10 {
		t.Errorf("Expected 10 successful orders, got %d", successCount)
	}
	if insufficientStockCount != 5 {
		t.Errorf("Expected 5 rejected orders, got %d", insufficientStockCount)
	}
	if stock := dealStock(t, db, deal.ID); stock != 0 {
		t.Errorf("Expected final stock 0, got %d", stock)
	}
}

func TestListUserOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		o, err := CreateOrder(ctx, db, CreateOrderRequest{UserID: 1, DealID: 2, Quantity: 1})
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}
	_, err := CreateOrder(ctx, db, CreateOrderRequest{UserID: 2, DealID: 2, Quantity: 1})
	require.NoError(t, err)

	orders, err := ListUserOrders(ctx, db, 1)
	require.NoError(t, err)
	require.Len(t, orders, 5)
	for i, o := range orders {
		assert.Equal(t, ids[len(ids)-1-i], o.ID)
	}

	empty, err := ListUserOrders(ctx, db, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	order, err := CreateOrder(ctx, db, CreateOrderRequest{DealID: 1, Quantity: 5})
	require.NoError(t, err)
	require.Equal(t, 95, dealStock(t, db, 1))

	cancelled, err := CancelOrder(ctx, db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 100, dealStock(t, db, 1))

	_, err = CancelOrder(ctx, db, order.ID)
	assert.ErrorIs(t, err, database.ErrOrderNotCancellable)
	assert.Equal(t, 100, dealStock(t, db, 1), "second cancel must not restore again")

	_, err = CancelOrder(ctx, db, "DH-missing")
	assert.ErrorIs(t, err, database.ErrOrderNotFound)
}

func TestCancelConfirmedOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	order, err := CreateOrder(ctx, db, CreateOrderRequest{DealID: 4, Quantity: 2})
	require.NoError(t, err)
	_, _, err = ProcessPayment(ctx, db, ProcessPaymentRequest{OrderID: order.ID, Amount: order.Total})
	require.NoError(t, err)

	_, err = CancelOrder(ctx, db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, dealStock(t, db, 4))
}

func TestCancelCompletedOrderFails(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	order, err := CreateOrder(ctx, db, CreateOrderRequest{DealID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = UpdateOrderStatus(ctx, db, order.ID, models.OrderStatusCompleted)
	require.NoError(t, err)

	_, err = CancelOrder(ctx, db, order.ID)
	assert.ErrorIs(t, err, database.ErrOrderNotCancellable)
	assert.Equal(t, 99, dealStock(t, db, 1))
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	order, err := CreateOrder(ctx, db, CreateOrderRequest{DealID: 1, Quantity: 1})
	require.NoError(t, err)

	_, err = UpdateOrderStatus(ctx, db, order.ID, "shipped")
	assert.ErrorIs(t, err, database.ErrInvalidStatus)

	updated, err := UpdateOrderStatus(ctx, db, order.ID, models.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(order.UpdatedAt))

	// Status updates do not touch stock, even to cancelled.
	_, err = UpdateOrderStatus(ctx, db, order.ID, models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, 99, dealStock(t, db, 1))

	_, err = UpdateOrderStatus(ctx, db, order.ID, models.OrderStatusPending)
	assert.ErrorIs(t, err, database.ErrOrderClosed)

	_, err = UpdateOrderStatus(ctx, db, "DH-missing", models.OrderStatusPending)
	assert.ErrorIs(t, err, database.ErrOrderNotFound)
}

func TestProcessPayment(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	order, err := CreateOrder(ctx, db, CreateOrderRequest{DealID: 1, Quantity: 2})
	require.NoError(t, err)

	p1, confirmed, err := ProcessPayment(ctx, db, ProcessPaymentRequest{
		OrderID:       order.ID,
		PaymentMethod: "card",
		Amount:        decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p1.ID, "PAY"))
	assert.True(t, strings.HasPrefix(p1.TransactionID, "TXN"))
	assert.Equal(t, models.PaymentStatusSuccess, p1.Status)
	assert.Equal(t, models.OrderStatusConfirmed, confirmed.Status)
	assert.Equal(t, p1.ID, confirmed.PaymentID)

	p2, again, err := ProcessPayment(ctx, db, ProcessPaymentRequest{OrderID: order.ID, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.NotEqual(t, p1.ID, p2.ID, "every call books a new payment")
	assert.Equal(t, p2.ID, again.PaymentID)

	_, _, err = ProcessPayment(ctx, db, ProcessPaymentRequest{OrderID: "DH-missing"})
	assert.ErrorIs(t, err, database.ErrOrderNotFound)
}

func TestStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	registerTestUser(t, db, "stats@example.com")

	_, err := CreateOrder(ctx, db, CreateOrderRequest{DealID: 1, Quantity: 5})
	require.NoError(t, err)
	_, err = CreateOrder(ctx, db, CreateOrderRequest{DealID: 7, Quantity: 3})
	require.NoError(t, err)
	require.NoError(t, DeleteDeal(ctx, db, 20))

	stats, err := Stats(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 19, stats.TotalDeals)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, "423.80", stats.TotalRevenue)
	assert.Equal(t, "186.20", stats.TotalSavings)
	assert.Equal(t, 1, stats.TotalUsers)

	health, err := HealthStats(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, models.HealthStats{Deals: 20, Users: 1, Orders: 2}, *health)
}

package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	UserID          int64
	DealID          int64
	Quantity        int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ScheduledDate   string
	ScheduledTime   string
	SpecialRequests string
	PaymentMethod   string
}

var hundred = decimal.NewFromInt(100)

// orderAmounts prices quantity units of a deal: base, discount and total.
// Savings equal the discount.
func orderAmounts(unitPrice, discountPercent decimal.Decimal, quantity int) (base, discount, total decimal.Decimal) {
	base = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	discount = base.Mul(discountPercent).Div(hundred)
	total = base.Sub(discount)
	return base, discount, total
}

func CreateOrder(ctx context.Context, db *database.DB, req CreateOrderRequest) (*models.Order, error) {
	if req.Quantity < 1 {
		return nil, database.ErrInvalidQuantity
	}

	var order *models.Order

	err := database.WithRetry(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		deal, ok := tx.FindDeal(req.DealID)
		if !ok {
			return database.ErrDealNotFound
		}
		if deal.Stock < req.Quantity {
			return database.ErrInsufficientStock
		}

		base, discount, total := orderAmounts(deal.BasePrice, deal.DiscountPercent, req.Quantity)
		now := time.Now().UTC()

		o := &models.Order{
			ID:              generateOrderID(),
			UserID:          req.UserID,
			DealID:          deal.ID,
			Deal:            deal.Offer,
			Store:           deal.Store,
			Category:        deal.Category,
			Quantity:        req.Quantity,
			BasePrice:       base,
			Discount:        discount,
			Total:           total,
			Savings:         discount,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ScheduledDate:   req.ScheduledDate,
			ScheduledTime:   req.ScheduledTime,
			SpecialRequests: req.SpecialRequests,
			PaymentMethod:   req.PaymentMethod,
			Status:          models.OrderStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		// Insert first: a duplicate id fails here, before anything is mutated.
		if err := tx.InsertOrder(o); err != nil {
			return err
		}
		deal.Stock -= req.Quantity

		if user, ok := tx.FindUser(req.UserID); ok {
			user.Orders = append(user.Orders, o.ID)
		}

		order = o.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

// ListUserOrders returns newest first; orders from the same instant keep
// reverse insertion order.
func ListUserOrders(ctx context.Context, db *database.DB, userID int64) ([]models.Order, error) {
	orders := []models.Order{}

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		for _, o := range tx.Orders() {
			if o.UserID == userID {
				orders = append(orders, *o.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list orders for user %d: %w", userID, err)
	}

	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].Seq > orders[j].Seq
	})

	return orders, nil
}

func GetOrder(ctx context.Context, db *database.DB, id string) (*models.Order, error) {
	var order *models.Order

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		o, ok := tx.FindOrder(id)
		if !ok {
			return database.ErrOrderNotFound
		}
		order = o.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}

	return order, nil
}

// UpdateOrderStatus sets any valid status on an open order. Stock is not
// touched, even when the new status is cancelled; CancelOrder does that.
func UpdateOrderStatus(ctx context.Context, db *database.DB, id, status string) (*models.Order, error) {
	var order *models.Order

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		o, ok := tx.FindOrder(id)
		if !ok {
			return database.ErrOrderNotFound
		}
		if !models.ValidOrderStatus(status) {
			return database.ErrInvalidStatus
		}
		if o.Terminal() {
			return database.ErrOrderClosed
		}
		o.Status = status
		o.UpdatedAt = time.Now().UTC()
		order = o.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update order %s status: %w", id, err)
	}

	return order, nil
}

func CancelOrder(ctx context.Context, db *database.DB, id string) (*models.Order, error) {
	var order *models.Order

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		o, ok := tx.FindOrder(id)
		if !ok {
			return database.ErrOrderNotFound
		}
		if o.Terminal() {
			return database.ErrOrderNotCancellable
		}

		if deal, ok := tx.FindDeal(o.DealID); ok {
			deal.Stock += o.Quantity
		}
		o.Status = models.OrderStatusCancelled
		o.UpdatedAt = time.Now().UTC()
		order = o.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cancel order %s: %w", id, err)
	}

	return order, nil
}

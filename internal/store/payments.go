package store

import (
	"context"
	"fmt"
	"time"

	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
	"github.com/shopspring/decimal"
)

type ProcessPaymentRequest struct {
	OrderID       string
	PaymentMethod string
	Amount        decimal.Decimal
}

// ProcessPayment simulates a gateway that always approves. The amount is
// recorded as given and each call books a new payment against the order.
func ProcessPayment(ctx context.Context, db *database.DB, req ProcessPaymentRequest) (*models.Payment, *models.Order, error) {
	var payment *models.Payment
	var order *models.Order

	err := database.WithRetry(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		o, ok := tx.FindOrder(req.OrderID)
		if !ok {
			return database.ErrOrderNotFound
		}

		now := time.Now().UTC()
		p := &models.Payment{
			ID:            generatePaymentID(),
			OrderID:       o.ID,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			Status:        models.PaymentStatusSuccess,
			TransactionID: generateTransactionID(),
			ProcessedAt:   now,
		}
		if err := tx.InsertPayment(p); err != nil {
			return err
		}

		o.Status = models.OrderStatusConfirmed
		o.PaymentID = p.ID
		o.UpdatedAt = now

		copied := *p
		payment = &copied
		order = o.Clone()
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("process payment for order %s: %w", req.OrderID, err)
	}

	return payment, order, nil
}

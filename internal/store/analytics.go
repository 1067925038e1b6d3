package store

import (
	"context"
	"fmt"

	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
	"github.com/shopspring/decimal"
)

// Stats summarizes the marketplace. Revenue and savings cover every order,
// cancelled ones included.
func Stats(ctx context.Context, db *database.DB) (*models.Stats, error) {
	stats := &models.Stats{}

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		for _, d := range tx.Deals() {
			if d.Active {
				stats.TotalDeals++
			}
		}

		revenue, savings := decimal.Zero, decimal.Zero
		for _, o := range tx.Orders() {
			revenue = revenue.Add(o.Total)
			savings = savings.Add(o.Savings)
		}

		stats.TotalOrders = len(tx.Orders())
		stats.TotalRevenue = revenue.StringFixed(2)
		stats.TotalSavings = savings.StringFixed(2)
		stats.TotalUsers = len(tx.Users())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return stats, nil
}

func HealthStats(ctx context.Context, db *database.DB) (*models.HealthStats, error) {
	var hs models.HealthStats

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		hs = models.HealthStats{
			Deals:  len(tx.Deals()),
			Users:  len(tx.Users()),
			Orders: len(tx.Orders()),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("health stats: %w", err)
	}

	return &hs, nil
}

package store

import (
	"context"
	"testing"

	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
	"github.com/shopspring/decimal"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db := database.New()
	if _, err := SeedCatalog(context.Background(), db); err != nil {
		t.Fatalf("Seed catalog: %v", err)
	}
	return db
}

func createTestDeal(t *testing.T, db *database.DB, price, discount int64, stock int) *models.Deal {
	t.Helper()

	store, category := "Test Store", "food"
	basePrice, discountPercent := decimal.NewFromInt(price), decimal.NewFromInt(discount)
	deal, err := CreateDeal(context.Background(), db, models.DealFields{
		Store:           &store,
		Category:        &category,
		BasePrice:       &basePrice,
		DiscountPercent: &discountPercent,
		Stock:           &stock,
	})
	if err != nil {
		t.Fatalf("Create deal: %v", err)
	}
	return deal
}

func dealStock(t *testing.T, db *database.DB, id int64) int {
	t.Helper()

	var stock int
	err := database.WithTransaction(context.Background(), db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		d, ok := tx.FindDeal(id)
		if !ok {
			return database.ErrDealNotFound
		}
		stock = d.Stock
		return nil
	})
	if err != nil {
		t.Fatalf("Read stock of deal %d: %v", id, err)
	}
	return stock
}

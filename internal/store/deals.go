package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
)

const (
	SortPopularity = "popularity"
	SortDiscount   = "discount"
	SortRating     = "rating"
)

// DealQuery filters the public listing. Zero values mean "no filter".
type DealQuery struct {
	Category string
	Search   string
	Sort     string
	Limit    int
}

func ListDeals(ctx context.Context, db *database.DB, q DealQuery) ([]models.Deal, error) {
	deals := []models.Deal{}
	search := strings.ToLower(q.Search)

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		for _, d := range tx.Deals() {
			if !d.Active {
				continue
			}
			if q.Category != "" && q.Category != "all" && d.Category != q.Category {
				continue
			}
			if search != "" && !matchesSearch(d, search) {
				continue
			}
			deals = append(deals, *d.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}

	switch q.Sort {
	case SortPopularity:
		sort.SliceStable(deals, func(i, j int) bool { return deals[i].Popularity > deals[j].Popularity })
	case SortDiscount, "discountPercent":
		sort.SliceStable(deals, func(i, j int) bool {
			return deals[i].DiscountPercent.GreaterThan(deals[j].DiscountPercent)
		})
	case SortRating:
		sort.SliceStable(deals, func(i, j int) bool { return deals[i].Rating > deals[j].Rating })
	}

	if q.Limit > 0 && len(deals) > q.Limit {
		deals = deals[:q.Limit]
	}

	return deals, nil
}

func matchesSearch(d *models.Deal, needle string) bool {
	return strings.Contains(strings.ToLower(d.Store), needle) ||
		strings.Contains(strings.ToLower(d.Offer), needle) ||
		strings.Contains(strings.ToLower(d.Description), needle)
}

// GetDeal returns the deal and counts the view. Inactive deals are still
// served.
func GetDeal(ctx context.Context, db *database.DB, id int64) (*models.Deal, error) {
	var deal *models.Deal

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		d, ok := tx.FindDeal(id)
		if !ok {
			return database.ErrDealNotFound
		}
		d.PeopleViewed++
		deal = d.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get deal %d: %w", id, err)
	}

	return deal, nil
}

func CreateDeal(ctx context.Context, db *database.DB, fields models.DealFields) (*models.Deal, error) {
	var deal *models.Deal

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		d := &models.Deal{
			Active:    true,
			CreatedAt: time.Now().UTC(),
		}
		fields.ApplyTo(d)
		if err := tx.InsertDeal(d); err != nil {
			return err
		}
		deal = d.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}

	return deal, nil
}

func UpdateDeal(ctx context.Context, db *database.DB, id int64, fields models.DealFields) (*models.Deal, error) {
	var deal *models.Deal

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		d, ok := tx.FindDeal(id)
		if !ok {
			return database.ErrDealNotFound
		}
		fields.ApplyTo(d)
		now := time.Now().UTC()
		d.UpdatedAt = &now
		deal = d.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update deal %d: %w", id, err)
	}

	return deal, nil
}

// DeleteDeal hides the deal from listings. Orders keep referencing it.
func DeleteDeal(ctx context.Context, db *database.DB, id int64) error {
	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		d, ok := tx.FindDeal(id)
		if !ok {
			return database.ErrDealNotFound
		}
		d.Active = false
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete deal %d: %w", id, err)
	}
	return nil
}

package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/safar/dealhunter-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertDealAssignsMonotonicIDs(t *testing.T) {
	db := New()
	ctx := context.Background()

	err := WithTransaction(ctx, db, DefaultTxOptions(), func(tx *Tx) error {
		for i := 0; i < 3; i++ {
			if err := tx.InsertDeal(&models.Deal{Store: fmt.Sprintf("store-%d", i)}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	err = WithTransaction(ctx, db, ReadOnlyTxOptions(), func(tx *Tx) error {
		deals := tx.Deals()
		require.Len(t, deals, 3)
		for i, d := range deals {
			assert.Equal(t, int64(i+1), d.ID)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestInsertDealKeepsSeededIDs(t *testing.T) {
	db := New()
	ctx := context.Background()

	err := WithTransaction(ctx, db, DefaultTxOptions(), func(tx *Tx) error {
		require.NoError(t, tx.InsertDeal(&models.Deal{ID: 20}))
		return tx.InsertDeal(&models.Deal{})
	})
	require.NoError(t, err)

	_ = WithTransaction(ctx, db, ReadOnlyTxOptions(), func(tx *Tx) error {
		_, ok := tx.FindDeal(21)
		assert.True(t, ok, "next id should follow the highest seeded id")
		return nil
	})
}

func TestReadOnlyTransactionRejectsWrites(t *testing.T) {
	db := New()

	err := WithTransaction(context.Background(), db, ReadOnlyTxOptions(), func(tx *Tx) error {
		return tx.InsertUser(&models.User{Email: "ro@example.com"})
	})
	assert.ErrorIs(t, err, ErrReadOnlyTx)
}

func TestWithTransactionHonoursCancelledContext(t *testing.T) {
	db := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTransaction(ctx, db, DefaultTxOptions(), func(tx *Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestInsertOrderRejectsDuplicateID(t *testing.T) {
	db := New()

	err := WithTransaction(context.Background(), db, DefaultTxOptions(), func(tx *Tx) error {
		require.NoError(t, tx.InsertOrder(&models.Order{ID: "DH1"}))
		return tx.InsertOrder(&models.Order{ID: "DH1"})
	})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestWithRetryRetriesDuplicateIDs(t *testing.T) {
	db := New()
	attempts := 0

	err := WithRetry(context.Background(), db, DefaultTxOptions(), func(tx *Tx) error {
		attempts++
		if attempts < 3 {
			return ErrDuplicateID
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryGivesUp(t *testing.T) {
	db := New()
	attempts := 0

	err := WithRetry(context.Background(), db, TxOptions{MaxRetries: 2}, func(tx *Tx) error {
		attempts++
		return ErrDuplicateID
	})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryStopsOnPermanentError(t *testing.T) {
	db := New()
	attempts := 0

	err := WithRetry(context.Background(), db, DefaultTxOptions(), func(tx *Tx) error {
		attempts++
		return ErrDealNotFound
	})
	assert.ErrorIs(t, err, ErrDealNotFound)
	assert.Equal(t, 1, attempts)
}

func TestSessions(t *testing.T) {
	db := New()
	ctx := context.Background()

	err := WithTransaction(ctx, db, DefaultTxOptions(), func(tx *Tx) error {
		require.NoError(t, tx.PutSession("tok", models.Session{UserID: 7}))
		assert.ErrorIs(t, tx.PutSession("tok", models.Session{UserID: 8}), ErrDuplicateID)

		s, ok := tx.Session("tok")
		require.True(t, ok)
		assert.Equal(t, int64(7), s.UserID)

		require.NoError(t, tx.DeleteSession("tok"))
		_, ok = tx.Session("tok")
		assert.False(t, ok)
		assert.Equal(t, 0, tx.SessionCount())
		return nil
	})
	require.NoError(t, err)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorClass
	}{
		{NewValidationError("Name is required"), ErrorClassValidation},
		{fmt.Errorf("wrapped: %w", NewValidationError("x")), ErrorClassValidation},
		{ErrInvalidStatus, ErrorClassValidation},
		{ErrInvalidQuantity, ErrorClassValidation},
		{ErrInvalidToken, ErrorClassAuth},
		{ErrAuthRequired, ErrorClassAuth},
		{ErrInvalidCredentials, ErrorClassAuth},
		{ErrIncorrectPassword, ErrorClassAuth},
		{fmt.Errorf("get deal 9: %w", ErrDealNotFound), ErrorClassNotFound},
		{ErrUserNotFound, ErrorClassNotFound},
		{ErrOrderNotFound, ErrorClassNotFound},
		{ErrEmailTaken, ErrorClassConflict},
		{ErrInsufficientStock, ErrorClassConflict},
		{ErrOrderNotCancellable, ErrorClassConflict},
		{ErrOrderClosed, ErrorClassConflict},
		{errors.New("boom"), ErrorClassInternal},
		{nil, ErrorClassInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyError(tt.err), "error: %v", tt.err)
	}
}

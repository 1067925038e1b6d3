package database

import (
	"context"
	"errors"
	"fmt"
)

type TxOptions struct {
	ReadOnly   bool
	MaxRetries int
}

func DefaultTxOptions() TxOptions {
	return TxOptions{
		ReadOnly:   false,
		MaxRetries: 3,
	}
}

func ReadOnlyTxOptions() TxOptions {
	return TxOptions{
		ReadOnly: true,
	}
}

// WithTransaction runs fn while holding the DB lock: the read lock for
// read-only options, the write lock otherwise. fn must do every check it
// needs before its first mutation; there is no rollback.
func WithTransaction(ctx context.Context, db *DB, opts TxOptions, fn func(*Tx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if opts.ReadOnly {
		db.mu.RLock()
		defer db.mu.RUnlock()
	} else {
		db.mu.Lock()
		defer db.mu.Unlock()
	}

	return fn(&Tx{db: db, readOnly: opts.ReadOnly})
}

// WithRetry re-runs fn in a fresh transaction while it fails with a
// retryable error, up to opts.MaxRetries extra attempts. fn is expected to
// regenerate whatever caused the conflict (usually a random id).
func WithRetry(ctx context.Context, db *DB, opts TxOptions, fn func(*Tx) error) error {
	var lastErr error

	for attempt := 0; attempt <= opts.MaxRetries; attempt++ {
		err := WithTransaction(ctx, db, opts, fn)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("max retries (%d) exceeded: %w", opts.MaxRetries, lastErr)
}

func IsRetryable(err error) bool {
	return errors.Is(err, ErrDuplicateID)
}

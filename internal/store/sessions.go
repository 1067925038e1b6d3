package store

import (
	"context"
	"fmt"
	"time"

	"github.com/safar/dealhunter-api/internal/auth"
	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
)

// reserveToken draws a token that is not in use yet. It must run in the same
// write transaction that stores it.
func reserveToken(tx *database.Tx) (string, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return "", err
	}
	if _, taken := tx.Session(token); taken {
		return "", database.ErrDuplicateID
	}
	return token, nil
}

func createSession(tx *database.Tx, userID int64) (string, error) {
	token, err := reserveToken(tx)
	if err != nil {
		return "", err
	}
	if err := tx.PutSession(token, models.Session{UserID: userID, CreatedAt: time.Now().UTC()}); err != nil {
		return "", err
	}
	return token, nil
}

// Authenticate resolves a bearer token to its user id.
func Authenticate(ctx context.Context, db *database.DB, token string) (int64, error) {
	if token == "" {
		return 0, database.ErrAuthRequired
	}

	var userID int64
	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		s, ok := tx.Session(token)
		if !ok {
			return database.ErrInvalidToken
		}
		userID = s.UserID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("authenticate: %w", err)
	}

	return userID, nil
}

// Logout revokes exactly this token; the user's other sessions survive.
func Logout(ctx context.Context, db *database.DB, token string) error {
	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		return tx.DeleteSession(token)
	})
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

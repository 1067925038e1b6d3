package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/safar/dealhunter-api/internal/auth"
	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
)

const DefaultAvatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg"

type RegisterRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
	Phone    string

	// AvatarBaseURL is the generator the avatar link points at; empty means
	// DefaultAvatarBaseURL.
	AvatarBaseURL string
}

type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required"`
}

// ProfileUpdate carries the editable profile fields. An empty Name is
// ignored; a non-nil Phone always replaces, even with "".
type ProfileUpdate struct {
	Name  string
	Phone *string
}

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	User  models.PublicUser
	Token string
}

func avatarURL(base, email string) string {
	if base == "" {
		base = DefaultAvatarBaseURL
	}
	return base + "?seed=" + url.QueryEscape(email)
}

func Register(ctx context.Context, db *database.DB, req RegisterRequest) (*AuthResult, error) {
	if err := checkInput(req, "Name, email, and password are required"); err != nil {
		return nil, err
	}

	// Hashing is deliberately slow; keep it outside the lock.
	salt, hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	email := strings.ToLower(req.Email)
	var result *AuthResult

	err = database.WithRetry(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		if _, exists := tx.FindUserByEmail(email); exists {
			return database.ErrEmailTaken
		}

		token, err := reserveToken(tx)
		if err != nil {
			return err
		}

		user := &models.User{
			Name:         req.Name,
			Email:        email,
			PasswordSalt: salt,
			PasswordHash: hash,
			Phone:        req.Phone,
			Avatar:       avatarURL(req.AvatarBaseURL, req.Email),
			CreatedAt:    time.Now().UTC(),
			Favorites:    []int64{},
			Orders:       []string{},
		}
		if err := tx.InsertUser(user); err != nil {
			return err
		}
		if err := tx.PutSession(token, models.Session{UserID: user.ID, CreatedAt: user.CreatedAt}); err != nil {
			return err
		}

		result = &AuthResult{User: user.Public(), Token: token}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", email, err)
	}

	return result, nil
}

// Login issues a fresh token. Earlier tokens of the same user stay valid.
func Login(ctx context.Context, db *database.DB, req LoginRequest) (*AuthResult, error) {
	if err := checkInput(req, "Email and password are required"); err != nil {
		return nil, err
	}

	email := strings.ToLower(req.Email)
	var salt, hash string
	var userID int64

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		u, ok := tx.FindUserByEmail(email)
		if !ok {
			return database.ErrInvalidCredentials
		}
		userID, salt, hash = u.ID, u.PasswordSalt, u.PasswordHash
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if !auth.VerifyPassword(req.Password, salt, hash) {
		return nil, fmt.Errorf("login: %w", database.ErrInvalidCredentials)
	}

	var result *AuthResult
	err = database.WithRetry(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		u, ok := tx.FindUser(userID)
		if !ok {
			return database.ErrInvalidCredentials
		}
		token, err := createSession(tx, u.ID)
		if err != nil {
			return err
		}
		result = &AuthResult{User: u.Public(), Token: token}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return result, nil
}

func GetUser(ctx context.Context, db *database.DB, id int64) (*models.User, error) {
	var user *models.User

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		u, ok := tx.FindUser(id)
		if !ok {
			return database.ErrUserNotFound
		}
		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}

	return user, nil
}

func UpdateProfile(ctx context.Context, db *database.DB, id int64, upd ProfileUpdate) (*models.User, error) {
	var user *models.User

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		u, ok := tx.FindUser(id)
		if !ok {
			return database.ErrUserNotFound
		}
		if upd.Name != "" {
			u.Name = upd.Name
		}
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		user = u.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update profile %d: %w", id, err)
	}

	return user, nil
}

func ChangePassword(ctx context.Context, db *database.DB, id int64, req ChangePasswordRequest) error {
	var salt, hash string

	err := database.WithTransaction(ctx, db, database.ReadOnlyTxOptions(), func(tx *database.Tx) error {
		u, ok := tx.FindUser(id)
		if !ok {
			return database.ErrUserNotFound
		}
		salt, hash = u.PasswordSalt, u.PasswordHash
		return nil
	})
	if err != nil {
		return fmt.Errorf("change password %d: %w", id, err)
	}

	if err := checkInput(req, "Both passwords required"); err != nil {
		return err
	}
	if !auth.VerifyPassword(req.CurrentPassword, salt, hash) {
		return fmt.Errorf("change password %d: %w", id, database.ErrIncorrectPassword)
	}
	if err := checkPasswordLength(req.NewPassword); err != nil {
		return err
	}

	newSalt, newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("change password %d: %w", id, err)
	}

	err = database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		u, ok := tx.FindUser(id)
		if !ok {
			return database.ErrUserNotFound
		}
		// Someone changed it while we were hashing; the verified password is stale.
		if u.PasswordHash != hash {
			return database.ErrIncorrectPassword
		}
		u.PasswordSalt, u.PasswordHash = newSalt, newHash
		return nil
	})
	if err != nil {
		return fmt.Errorf("change password %d: %w", id, err)
	}

	return nil
}

func AddFavorite(ctx context.Context, db *database.DB, userID, dealID int64) ([]int64, error) {
	return updateFavorites(ctx, db, userID, func(favs []int64) []int64 {
		for _, id := range favs {
			if id == dealID {
				return favs
			}
		}
		return append(favs, dealID)
	})
}

func RemoveFavorite(ctx context.Context, db *database.DB, userID, dealID int64) ([]int64, error) {
	return updateFavorites(ctx, db, userID, func(favs []int64) []int64 {
		kept := make([]int64, 0, len(favs))
		for _, id := range favs {
			if id != dealID {
				kept = append(kept, id)
			}
		}
		return kept
	})
}

func updateFavorites(ctx context.Context, db *database.DB, userID int64, apply func([]int64) []int64) ([]int64, error) {
	var favorites []int64

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *database.Tx) error {
		u, ok := tx.FindUser(userID)
		if !ok {
			return database.ErrUserNotFound
		}
		u.Favorites = apply(u.Favorites)
		favorites = append([]int64{}, u.Favorites...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update favorites %d: %w", userID, err)
	}

	return favorites, nil
}

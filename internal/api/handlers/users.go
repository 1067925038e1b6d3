package handlers

import (
	"context"
	"net/http"

	"github.com/safar/dealhunter-api/internal/api/middleware"
	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/store"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	base
	db            *database.DB
	avatarBaseURL string
}

func NewUserHandler(db *database.DB, log logrus.FieldLogger, maxBodyBytes int, avatarBaseURL string) *UserHandler {
	return &UserHandler{base: newBase(log, maxBodyBytes), db: db, avatarBaseURL: avatarBaseURL}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := store.Register(r.Context(), h.db, store.RegisterRequest{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Phone:         req.Phone,
		AvatarBaseURL: h.avatarBaseURL,
	})
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusCreated, envelope{
		"message": "Account created successfully! Welcome aboard 🎉",
		"user":    res.User,
		"token":   res.Token,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := store.Login(r.Context(), h.db, store.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{
		"message": "Welcome back! 👋",
		"user":    res.User,
		"token":   res.Token,
	})
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := store.Logout(r.Context(), h.db, middleware.Token(r.Context())); err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"message": "Logged out successfully"})
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	user, err := store.GetUser(r.Context(), h.db, userID)
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"user": user.Profile()})
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req profileRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := store.UpdateProfile(r.Context(), h.db, userID, store.ProfileUpdate{Name: req.Name, Phone: req.Phone})
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"message": "Profile updated", "user": user.Public()})
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req passwordRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	err := store.ChangePassword(r.Context(), h.db, userID, store.ChangePasswordRequest{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"message": "Password changed successfully"})
}

func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.favorite(w, r, store.AddFavorite)
}

func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.favorite(w, r, store.RemoveFavorite)
}

type favoriteOp func(ctx context.Context, db *database.DB, userID, dealID int64) ([]int64, error)

func (h *UserHandler) favorite(w http.ResponseWriter, r *http.Request, op favoriteOp) {
	userID, _ := middleware.UserID(r.Context())

	dealID, ok := int64Param(r, "dealId")
	if !ok {
		writeFailure(w, http.StatusBadRequest, "Invalid deal id")
		return
	}

	favorites, err := op(r.Context(), h.db, userID, dealID)
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"favorites": favorites})
}

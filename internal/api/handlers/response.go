package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/safar/dealhunter-api/internal/database"
	"github.com/sirupsen/logrus"
)

const msgServerError = "Server error"

// base carries what every resource handler needs to read requests and write
// responses.
type base struct {
	log          logrus.FieldLogger
	maxBodyBytes int64
}

func newBase(log logrus.FieldLogger, maxBodyBytes int) base {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return base{log: log, maxBodyBytes: int64(maxBodyBytes)}
}

type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeOK(w http.ResponseWriter, status int, body envelope) {
	body["success"] = true
	writeJSON(w, status, body)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"success": false, "message": message})
}

// clientMessages are the user-facing texts for known failures.
var clientMessages = []struct {
	err error
	msg string
}{
	{database.ErrDealNotFound, "Deal not found"},
	{database.ErrUserNotFound, "User not found"},
	{database.ErrOrderNotFound, "Order not found"},
	{database.ErrInsufficientStock, "Insufficient stock"},
	{database.ErrInvalidQuantity, "Quantity must be at least 1"},
	{database.ErrInvalidStatus, "Invalid status"},
	{database.ErrOrderNotCancellable, "Cannot cancel this order"},
	{database.ErrOrderClosed, "Order is already completed or cancelled"},
	{database.ErrEmailTaken, "An account with this email already exists"},
	{database.ErrInvalidCredentials, "Invalid email or password"},
	{database.ErrIncorrectPassword, "Current password is incorrect"},
	{database.ErrAuthRequired, "Authentication required"},
	{database.ErrInvalidToken, "Invalid or expired token"},
}

func statusFor(class database.ErrorClass) int {
	switch class {
	case database.ErrorClassValidation, database.ErrorClassConflict:
		return http.StatusBadRequest
	case database.ErrorClassAuth:
		return http.StatusUnauthorized
	case database.ErrorClassNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError maps err to a status and message. Internal errors are logged
// and reported to the client as fallback.
func (b base) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	class := database.ClassifyError(err)
	status := statusFor(class)

	if class == database.ErrorClassInternal {
		b.log.WithFields(logrus.Fields{
			"request_id": chimw.GetReqID(r.Context()),
			"path":       r.URL.Path,
		}).WithError(err).Error("request failed")
		writeFailure(w, status, fallback)
		return
	}

	var vErr *database.ValidationError
	if errors.As(err, &vErr) {
		writeFailure(w, status, vErr.Msg)
		return
	}
	for _, cm := range clientMessages {
		if errors.Is(err, cm.err) {
			writeFailure(w, status, cm.msg)
			return
		}
	}
	writeFailure(w, status, err.Error())
}

// decodeJSON reads a single JSON value into dst. Unknown fields are
// ignored; an empty body decodes as {}.
func (b base) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, b.maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}

	if err := dec.Decode(&struct{}{}); err != nil && !errors.Is(err, io.EOF) {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}

	return true
}

func int64Param(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

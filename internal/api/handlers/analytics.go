package handlers

import (
	"net/http"
	"time"

	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/store"
	"github.com/sirupsen/logrus"
)

const healthMessage = "DealHunter API v2.0 ✅"

type AnalyticsHandler struct {
	base
	db *database.DB
}

func NewAnalyticsHandler(db *database.DB, log logrus.FieldLogger) *AnalyticsHandler {
	return &AnalyticsHandler{base: newBase(log, 0), db: db}
}

func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := store.Stats(r.Context(), h.db)
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"stats": stats})
}

func (h *AnalyticsHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats, err := store.HealthStats(r.Context(), h.db)
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{
		"message":   healthMessage,
		"timestamp": time.Now().UTC(),
		"stats":     stats,
	})
}

// NotFound answers unmatched routes and unsupported methods alike.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusNotFound, "Route not found")
}

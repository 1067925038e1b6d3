package handlers

import (
	"net/http"
	"strconv"

	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/models"
	"github.com/safar/dealhunter-api/internal/store"
	"github.com/sirupsen/logrus"
)

type DealHandler struct {
	base
	db *database.DB
}

func NewDealHandler(db *database.DB, log logrus.FieldLogger, maxBodyBytes int) *DealHandler {
	return &DealHandler{base: newBase(log, maxBodyBytes), db: db}
}

func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	deals, err := store.ListDeals(r.Context(), h.db, store.DealQuery{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		Limit:    limit,
	})
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"count": len(deals), "deals": deals})
}

// Get also counts the view.
func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		h.respondError(w, r, database.ErrDealNotFound, msgServerError)
		return
	}

	deal, err := store.GetDeal(r.Context(), h.db, id)
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"deal": deal})
}

func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields models.DealFields
	if !h.decodeJSON(w, r, &fields) {
		return
	}

	deal, err := store.CreateDeal(r.Context(), h.db, fields)
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusCreated, envelope{"deal": deal})
}

func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		h.respondError(w, r, database.ErrDealNotFound, msgServerError)
		return
	}

	var fields models.DealFields
	if !h.decodeJSON(w, r, &fields) {
		return
	}

	deal, err := store.UpdateDeal(r.Context(), h.db, id, fields)
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"deal": deal})
}

func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		h.respondError(w, r, database.ErrDealNotFound, msgServerError)
		return
	}

	if err := store.DeleteDeal(r.Context(), h.db, id); err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"message": "Deal deleted"})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	base
	db *database.DB
}

func NewOrderHandler(db *database.DB, log logrus.FieldLogger, maxBodyBytes int) *OrderHandler {
	return &OrderHandler{base: newBase(log, maxBodyBytes), db: db}
}

type createOrderRequest struct {
	UserID          looseInt `json:"userId"`
	DealID          looseInt `json:"dealId"`
	Quantity        looseInt `json:"quantity"`
	CustomerName    string   `json:"customerName"`
	CustomerEmail   string   `json:"customerEmail"`
	CustomerPhone   string   `json:"customerPhone"`
	ScheduledDate   string   `json:"scheduledDate"`
	ScheduledTime   string   `json:"scheduledTime"`
	SpecialRequests string   `json:"specialRequests"`
	PaymentMethod   string   `json:"paymentMethod"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type paymentRequest struct {
	OrderID       string          `json:"orderId"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	order, err := store.CreateOrder(r.Context(), h.db, store.CreateOrderRequest{
		UserID:          int64(req.UserID),
		DealID:          int64(req.DealID),
		Quantity:        int(req.Quantity),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ScheduledDate:   req.ScheduledDate,
		ScheduledTime:   req.ScheduledTime,
		SpecialRequests: req.SpecialRequests,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	h.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"deal_id":  order.DealID,
		"quantity": order.Quantity,
	}).Info("order created")

	writeOK(w, http.StatusCreated, envelope{"message": "Order created successfully", "order": order})
}

// ListByUser is public: any caller may list any user's orders.
func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := int64Param(r, "userId")
	if !ok {
		writeOK(w, http.StatusOK, envelope{"count": 0, "orders": []struct{}{}})
		return
	}

	orders, err := store.ListUserOrders(r.Context(), h.db, userID)
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"count": len(orders), "orders": orders})
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := store.GetOrder(r.Context(), h.db, chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"order": order})
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	order, err := store.UpdateOrderStatus(r.Context(), h.db, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	writeOK(w, http.StatusOK, envelope{"order": order})
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	order, err := store.CancelOrder(r.Context(), h.db, chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err, msgServerError)
		return
	}

	h.log.WithField("order_id", order.ID).Info("order cancelled")
	writeOK(w, http.StatusOK, envelope{"order": order})
}

func (h *OrderHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	payment, order, err := store.ProcessPayment(r.Context(), h.db, store.ProcessPaymentRequest{
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
	})
	if err != nil {
		h.respondError(w, r, err, "Payment failed")
		return
	}

	h.log.WithFields(logrus.Fields{
		"order_id":   order.ID,
		"payment_id": payment.ID,
	}).Info("payment processed")

	writeOK(w, http.StatusOK, envelope{
		"message": "Payment processed successfully",
		"payment": payment,
		"order":   order,
	})
}

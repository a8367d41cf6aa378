package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/petstore/order-system/order-service/application"
	"github.com/petstore/order-system/order-service/domain"
)

// OrderHandlers contains order HTTP handlers
type OrderHandlers struct {
	placeOrder *application.PlaceOrder
	getOrder   *application.GetOrder
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(placeOrder *application.PlaceOrder, getOrder *application.GetOrder) *OrderHandlers {
	return &OrderHandlers{
		placeOrder: placeOrder,
		getOrder:   getOrder,
	}
}

// PlaceOrder handles order placement requests
func (h *OrderHandlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var cmd application.PlaceOrderCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.placeOrder.Execute(r.Context(), &cmd)
	if err != nil {
		writePlacementError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// writePlacementError maps a classified saga failure to an HTTP status.
// Compensation and failure finalization have already run by the time the
// error reaches this point.
func writePlacementError(w http.ResponseWriter, err error) {
	if strings.Contains(err.Error(), "invalid command") {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch domain.ClassifyFailure(err) {
	case domain.FailureReasonPaymentDeclined, domain.FailureReasonInvalidPaymentMethod:
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	case domain.FailureReasonOutOfStockItems:
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetOrder handles order retrieval requests
func (h *OrderHandlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		http.Error(w, "Order number is required", http.StatusBadRequest)
		return
	}

	query := &application.GetOrderQuery{OrderNumber: orderNumber}

	response, err := h.getOrder.Execute(r.Context(), query)
	if err != nil {
		if strings.Contains(err.Error(), "order not found") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RegisterRoutes registers order routes
func (h *OrderHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.PlaceOrder)
		r.Get("/{orderNumber}", h.GetOrder)
	})
}

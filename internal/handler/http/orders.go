// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package http

import (
	"encoding/json"
	"net/http"

	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/utils"
	"github.com/tilyasov/bookstore/models"
)

// createOrder records the caller's purchase of the referenced book and
// returns it with HTTP 201.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	callerIdentity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Err: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	order, err := h.services.OrderService.CreateOrder(r.Context(), request.BookID, callerIdentity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Msg("order creation failed")
		respondError(w, err)
		return
	}

	log.Debug().Str("id", order.ID).Str("book_id", order.BookID).Msg("order created")
	_, _ = utils.WriteJSON(w, order, http.StatusCreated)
}

// getOrders returns the caller's purchase history, each entry annotated with
// a projection of the referenced book.
func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	callerIdentity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	orders, err := h.services.OrderService.GetOrders(r.Context(), callerIdentity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getOrders").Msg("order listing failed")
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, orders, http.StatusOK)
}

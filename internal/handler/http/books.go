// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/utils"
	"github.com/tilyasov/bookstore/models"
)

// getAllBooks returns the whole catalog. This route is public.
func (h *Handler) getAllBooks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	books, err := h.services.BookService.GetAllBooks(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllBooks").Msg("catalog listing failed")
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, books, http.StatusOK)
}

// getBook returns the single listing named by the {bookId} URL parameter.
func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookID := chi.URLParam(r, "bookId")

	book, err := h.services.BookService.GetBook(r.Context(), bookID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBook").Str("book_id", bookID).Msg("book lookup failed")
		respondError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, book, http.StatusOK)
}

// createBook persists a new listing owned by the caller and returns it with
// HTTP 201.
func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	callerIdentity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createBook").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Err: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.CreateBook(r.Context(), request.Book, callerIdentity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createBook").Msg("book creation failed")
		respondError(w, err)
		return
	}

	log.Debug().Str("id", book.ID).Str("name", book.Name).Msg("book created")
	_, _ = utils.WriteJSON(w, book, http.StatusCreated)
}

// deleteBook removes the listing named by {bookId} together with every order
// referencing it, and returns the removed listing.
//
// Any authenticated caller may delete any listing.
func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookID := chi.URLParam(r, "bookId")

	book, ordersDeleted, err := h.services.BookService.DeleteBook(r.Context(), bookID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteBook").Str("book_id", bookID).Msg("book deletion failed")
		respondError(w, err)
		return
	}

	log.Debug().Str("book_id", bookID).Int64("orders_deleted", ordersDeleted).Msg("book deleted")
	_, _ = utils.WriteJSON(w, book, http.StatusOK)
}

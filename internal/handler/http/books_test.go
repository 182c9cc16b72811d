// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilyasov/bookstore/internal/service"
	"github.com/tilyasov/bookstore/internal/store"
	"github.com/tilyasov/bookstore/models"
	"go.uber.org/mock/gomock"
)

func TestGetAllBooks_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.books.EXPECT().GetAllBooks(gomock.Any()).Return([]models.Book{
		{ID: "b-1", Name: "Dune"},
		{ID: "b-2", Name: "Solaris"},
	}, nil)

	response, body := doRequest(t, h, http.MethodGet, "/books", "", nil)

	assert.Equal(t, http.StatusOK, response.StatusCode)

	var books []models.Book
	require.NoError(t, json.Unmarshal([]byte(body), &books))
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Name)
}

func TestGetAllBooks_EmptyCatalogSerializesAsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.books.EXPECT().GetAllBooks(gomock.Any()).Return([]models.Book{}, nil)

	response, body := doRequest(t, h, http.MethodGet, "/books", "", nil)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "[]", strings.TrimSpace(body))
}

func TestGetBook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.allowToken()
	m.books.EXPECT().GetBook(gomock.Any(), "b-1").Return(models.Book{ID: "b-1", Name: "Dune"}, nil)

	response, body := doRequest(t, h, http.MethodGet, "/book/b-1", "good-token", nil)

	assert.Equal(t, http.StatusOK, response.StatusCode)

	var book models.Book
	require.NoError(t, json.Unmarshal([]byte(body), &book))
	assert.Equal(t, "Dune", book.Name)
}

func TestGetBook_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.allowToken()
	m.books.EXPECT().GetBook(gomock.Any(), "ghost").Return(models.Book{}, store.ErrBookNotFound)

	response, body := doRequest(t, h, http.MethodGet, "/book/ghost", "good-token", nil)

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Contains(t, body, `"err"`)
}

func TestCreateBook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.allowToken()

	submitted := models.Book{Name: "Dune", Author: "Herbert", Price: "20", Image: "u.jpg"}
	m.books.EXPECT().CreateBook(gomock.Any(), submitted, anna).Return(
		models.Book{ID: "b-1", Name: "Dune", Author: "Herbert", Price: "20", Quantity: "1", Image: "u.jpg", Email: anna.Email}, nil)

	payload := `{"book":{"name":"Dune","author":"Herbert","price":"20","image":"u.jpg"}}`
	response, body := doRequest(t, h, http.MethodPost, "/books", "good-token", strings.NewReader(payload))

	assert.Equal(t, http.StatusCreated, response.StatusCode)

	var book models.Book
	require.NoError(t, json.Unmarshal([]byte(body), &book))
	assert.Equal(t, "b-1", book.ID)
	assert.Equal(t, anna.Email, book.Email)
}

func TestCreateBook_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.allowToken()

	response, body := doRequest(t, h, http.MethodPost, "/books", "good-token", strings.NewReader("{not json"))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.JSONEq(t, `{"err":"Invalid JSON was passed"}`, body)
}

func TestCreateBook_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.allowToken()
	m.books.EXPECT().CreateBook(gomock.Any(), gomock.Any(), anna).Return(
		models.Book{}, service.ErrInvalidDataProvided)

	payload := `{"book":{"name":"Dune"}}`
	response, _ := doRequest(t, h, http.MethodPost, "/books", "good-token", strings.NewReader(payload))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestDeleteBook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.allowToken()
	m.books.EXPECT().DeleteBook(gomock.Any(), "b-1").Return(models.Book{ID: "b-1", Name: "Dune"}, int64(2), nil)

	response, body := doRequest(t, h, http.MethodDelete, "/book/b-1", "good-token", nil)

	assert.Equal(t, http.StatusOK, response.StatusCode)

	var book models.Book
	require.NoError(t, json.Unmarshal([]byte(body), &book))
	assert.Equal(t, "b-1", book.ID)
}

func TestDeleteBook_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.allowToken()
	m.books.EXPECT().DeleteBook(gomock.Any(), "ghost").Return(models.Book{}, int64(0), store.ErrBookNotFound)

	response, _ := doRequest(t, h, http.MethodDelete, "/book/ghost", "good-token", nil)

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestDeleteBook_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.allowToken()
	m.books.EXPECT().DeleteBook(gomock.Any(), "b-1").Return(models.Book{}, int64(0), store.ErrExecutingStatement)

	response, body := doRequest(t, h, http.MethodDelete, "/book/b-1", "good-token", nil)

	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
	// the raw storage error must not leak to clients
	assert.NotContains(t, body, "statement")
}

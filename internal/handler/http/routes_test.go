// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Ilyasov

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tilyasov/bookstore/models"
	"go.uber.org/mock/gomock"
)

// newTestRouter builds the full router with every collaborator mocked to
// succeed, so route-table tests can tell "registered" from "not registered"
// without programming each handler individually.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	h, m := newTestHandler(t, ctrl)

	m.verifier.EXPECT().Verify(gomock.Any(), "good-token").Return(anna, nil).AnyTimes()

	m.users.EXPECT().Login(gomock.Any(), anna).Return(models.User{}, nil).AnyTimes()
	m.users.EXPECT().Profile(gomock.Any(), anna).Return(models.User{}, nil).AnyTimes()
	m.books.EXPECT().GetAllBooks(gomock.Any()).Return(nil, nil).AnyTimes()
	m.books.EXPECT().GetBook(gomock.Any(), gomock.Any()).Return(models.Book{}, nil).AnyTimes()
	m.books.EXPECT().DeleteBook(gomock.Any(), gomock.Any()).Return(models.Book{}, int64(0), nil).AnyTimes()
	m.orders.EXPECT().GetOrders(gomock.Any(), anna).Return(nil, nil).AnyTimes()

	return h.Init()
}

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code,
		"GET /books should be reachable without a token")
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/login"},
		{http.MethodPost, "/me"},
		{http.MethodPost, "/books"},
		{http.MethodGet, "/book/b-1"},
		{http.MethodDelete, "/book/b-1"},
		{http.MethodPost, "/orders"},
		{http.MethodGet, "/orders"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/login"},
		{http.MethodPost, "/me"},
		{http.MethodGet, "/book/b-1"},
		{http.MethodDelete, "/book/b-1"},
		{http.MethodGet, "/orders"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(authTokenHeader, "good-token")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"valid token should not result in 401")
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nonexistent"},
		{http.MethodGet, "/books/extra/segment"},
		{http.MethodPost, "/book"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on an existing route ----

func TestInit_WrongMethod_Returns405(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{
			name:   "DELETE on /books (GET and POST only)",
			method: http.MethodDelete,
			path:   "/books",
		},
		{
			name:   "PUT on /orders (GET and POST only)",
			method: http.MethodPut,
			path:   "/orders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}

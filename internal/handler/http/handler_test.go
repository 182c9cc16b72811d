package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/mock"
	"github.com/tilyasov/bookstore/internal/service"
	"github.com/tilyasov/bookstore/models"
	"go.uber.org/mock/gomock"
)

// testMocks bundles every collaborator a handler test may need to program.
type testMocks struct {
	users    *mock.MockUserService
	books    *mock.MockBookService
	orders   *mock.MockOrderService
	verifier *mock.MockTokenVerifier
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *testMocks) {
	t.Helper()

	m := &testMocks{
		users:    mock.NewMockUserService(ctrl),
		books:    mock.NewMockBookService(ctrl),
		orders:   mock.NewMockOrderService(ctrl),
		verifier: mock.NewMockTokenVerifier(ctrl),
	}

	services := &service.Services{
		UserService:  m.users,
		BookService:  m.books,
		OrderService: m.orders,
	}

	return NewHandler(services, m.verifier, logger.Nop()), m
}

// anna is the verified identity used by most tests.
var anna = models.Identity{Email: "anna@example.com", Name: "Anna"}

// allowToken programs the verifier to accept the "good-token" header value.
func (m *testMocks) allowToken() {
	m.verifier.EXPECT().Verify(gomock.Any(), "good-token").Return(anna, nil)
}

// doRequest routes the request through the full middleware chain and returns
// the recorded response with its body read out.
func doRequest(t *testing.T, h *Handler, method, target, token string, body io.Reader) (*http.Response, string) {
	t.Helper()

	request := httptest.NewRequest(method, target, body)
	if token != "" {
		request.Header.Set(authTokenHeader, token)
	}

	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, request)

	response := recorder.Result()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	return response, string(raw)
}

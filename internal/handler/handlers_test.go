package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tilyasov/bookstore/internal/config"
	"github.com/tilyasov/bookstore/internal/identity"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/service"
	"github.com/tilyasov/bookstore/internal/utils"
)

func testVerifier() *identity.Verifier {
	cfg := config.Identity{Issuer: "iss", Audience: "aud", CertsURL: "http://localhost:0/certs"}
	log := logger.Nop()
	return identity.NewVerifier(cfg, identity.NewCertKeyStore(cfg, utils.NewHTTPClient(), log), log)
}

func TestNewHandlers_HTTPAddressConfigured(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, testVerifier(), config.Server{HTTPAddress: ":5000"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddressIsFatal(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, testVerifier(), config.Server{}, logger.Nop())
	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

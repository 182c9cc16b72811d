package handler

import (
	"github.com/tilyasov/bookstore/internal/config"
	"github.com/tilyasov/bookstore/internal/handler/http"
	"github.com/tilyasov/bookstore/internal/identity"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, verifier identity.TokenVerifier, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, verifier, logger),
	}, nil
}

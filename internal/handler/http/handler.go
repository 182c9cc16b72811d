package http

import (
	"github.com/tilyasov/bookstore/internal/identity"
	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/internal/service"
)

type Handler struct {
	services *service.Services
	verifier identity.TokenVerifier

	logger *logger.Logger
}

func NewHandler(services *service.Services, verifier identity.TokenVerifier, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		verifier: verifier,
		logger:   logger,
	}
}

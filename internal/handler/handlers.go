package handler

import (
	"github.com/abcall/user-management-gateway/internal/handler/http"
	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}

// Package http implements the HTTP transport layer of the gateway.
// It provides the routes, middleware, and response shaping for the public
// REST surface. Authentication, tracing, and logging concerns are handled
// at this layer before requests are forwarded to the service layer.
package http

import (
	"github.com/abcall/user-management-gateway/internal/logger"
	"github.com/abcall/user-management-gateway/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

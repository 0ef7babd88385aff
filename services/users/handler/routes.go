package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/services/users/handler/http"
)

// Handler coordinates HTTP handlers for the users service
type Handler struct {
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(userHandler *http.UserHandler, cfg *models.Config) *Handler {
	return &Handler{
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the users service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	userGroup := e.Group("/api/users")
	userGroup.POST("/webhooks", h.userHandler.IdentityWebhook)
	userGroup.GET("/credits", h.userHandler.GetCredits)
}

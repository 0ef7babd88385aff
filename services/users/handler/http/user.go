package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/logger"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/webhook"
	"github.com/swarajreddy10/bg-removal-server/internal/utils"
	"github.com/swarajreddy10/bg-removal-server/services/users"
)

// UserHandler handles HTTP requests for identity sync and credit queries
type UserHandler struct {
	userUC   users.UserUC
	verifier webhook.Verifier
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC, verifier webhook.Verifier) *UserHandler {
	return &UserHandler{
		userUC:   userUC,
		verifier: verifier,
	}
}

// IdentityWebhook handles identity-provider webhook deliveries. The raw
// body is verified against the signature headers before any parsing of the
// event is trusted.
func (h *UserHandler) IdentityWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read request body")
	}

	if err := h.verifier.Verify(payload, c.Request().Header); err != nil {
		logger.Warn("Rejected unverifiable identity webhook",
			logger.Err(err),
			logger.String("svix_id", c.Request().Header.Get(webhook.HeaderID)),
		)
		return utils.BadRequestResponse(c, "Webhook verification failed")
	}

	var event models.IdentityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return utils.BadRequestResponse(c, "Invalid webhook payload")
	}

	if err := h.userUC.ApplyIdentityEvent(c.Request().Context(), &event); err != nil {
		logger.Error("Failed to apply identity event",
			logger.Err(err),
			logger.String("event_type", event.Type),
			logger.String("clerk_id", event.Data.ID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to process identity event")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// GetCredits handles credit balance queries
func (h *UserHandler) GetCredits(c echo.Context) error {
	clerkID := c.QueryParam("clerk_id")
	if clerkID == "" {
		return utils.BadRequestResponse(c, "clerk_id is required")
	}

	credits, err := h.userUC.GetCredits(c.Request().Context(), clerkID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.FailureResponse(c, "User not found")
		}
		logger.Error("Failed to retrieve credit balance",
			logger.Err(err),
			logger.String("clerk_id", clerkID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve credits")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"credits": credits,
	})
}

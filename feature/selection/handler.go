package selection

import (
	"errors"

	"sports-catalog/core/logger"
	"sports-catalog/core/server"
	"sports-catalog/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for league selections.
type Handler struct {
	service *Service
	server  server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, srv server.Config) *Handler {
	return &Handler{service: service, server: srv}
}

// RegisterRoutes registers the selection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/selection")
	group.Get("/", h.HandleGet)
	group.Put("/", h.HandlePut)
}

// HandleGet returns the league selection of the session.
// @Summary Get Selection
// @Description Returns the saved league selection of the session, or the configured defaults.
// @Tags selection
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} selection.Selection "Selection"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /selection [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	owner := h.server.Owner(c.Get(h.server.SessionHeader))

	sel, err := h.service.Get(c.UserContext(), owner)
	if err != nil {
		l.Error("Selection read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sel)
}

// HandlePut saves the league selection of the session.
// @Summary Save Selection
// @Description Replaces the saved league selection of the session.
// @Tags selection
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body selection.UpdateRequest true "Leagues"
// @Success 200 {object} selection.Selection "Saved Selection"
// @Failure 400 {object} map[string]interface{} "Validation Error"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /selection [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	owner := h.server.Owner(c.Get(h.server.SessionHeader))

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	sel, err := h.service.Set(c.UserContext(), owner, req)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": vErr.Fields})
		}
		l.Error("Selection write failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sel)
}

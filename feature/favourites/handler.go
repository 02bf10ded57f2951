package favourites

import (
	"errors"

	"sports-catalog/core/logger"
	"sports-catalog/core/server"
	"sports-catalog/core/upstream"
	"sports-catalog/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ToggleRequest is the body of POST /favourites/toggle.
type ToggleRequest struct {
	TeamID string `json:"team_id" validate:"required,max=32"`
}

// Handler handles HTTP requests for favourites.
type Handler struct {
	service *Service
	server  server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, srv server.Config) *Handler {
	return &Handler{service: service, server: srv}
}

// RegisterRoutes registers the favourites routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/favourites")
	group.Get("/", h.HandleList)
	group.Post("/toggle", h.HandleToggle)
}

// HandleList returns the favourite teams of the session.
// @Summary List Favourites
// @Tags favourites
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} favourites.Favourite "Favourites"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /favourites [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	favs, err := h.service.List(c.UserContext(), h.server.Owner(c.Get(h.server.SessionHeader)))
	if err != nil {
		l.Error("Favourites listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if favs == nil {
		favs = []Favourite{}
	}
	return c.JSON(favs)
}

// HandleToggle adds or removes a favourite team.
// @Summary Toggle Favourite
// @Tags favourites
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body favourites.ToggleRequest true "Team"
// @Success 200 {object} favourites.ToggleResult "New State"
// @Failure 400 {object} map[string]interface{} "Validation Error"
// @Failure 404 {object} map[string]string "Unknown Team"
// @Router /favourites/toggle [post]
func (h *Handler) HandleToggle(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		var vErr *validation.Error
		errors.As(err, &vErr)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": vErr.Fields})
	}

	res, err := h.service.Toggle(c.UserContext(), h.server.Owner(c.Get(h.server.SessionHeader)), req.TeamID)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Favourite toggle failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

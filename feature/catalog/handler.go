package catalog

import (
	"errors"
	"io"

	"sports-catalog/core/logger"
	"sports-catalog/core/server"
	"sports-catalog/core/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ResetRequest is the optional body of POST /catalog/{kind}/reset.
type ResetRequest struct {
	Leagues []string `json:"leagues"`
}

// Handler handles HTTP requests for catalog browsing.
type Handler struct {
	service *Service
	server  server.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, srv server.Config) *Handler {
	return &Handler{service: service, server: srv}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog/:kind")
	group.Get("/", h.HandlePage)
	group.Post("/reset", h.HandleReset)
	group.Post("/more", h.HandleMore)
	group.Post("/enrich", h.HandleEnrich)
	group.Get("/search", h.HandleSearch)
	group.Post("/export", h.HandleExport)
	group.Get("/exports", h.HandleListExports)
	group.Get("/exports/:name", h.HandleGetExport)

	app.Get("/teams/:id", h.HandleTeam)
}

func (h *Handler) owner(c *fiber.Ctx) string {
	return h.server.Owner(c.Get(h.server.SessionHeader))
}

// fail maps service errors to status codes.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUnknownKind), errors.Is(err, ErrInvalidSnapshot):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNoSession), errors.Is(err, upstream.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrExportDisabled):
		status = fiber.StatusServiceUnavailable
	case minio.ToErrorResponse(err).Code == "NoSuchKey":
		status = fiber.StatusNotFound
	}

	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleReset starts a new browsing generation.
// @Summary Reset Session
// @Description Resolves the league selection (body, saved selection or defaults) into teams and clears the window.
// @Tags catalog
// @Accept json
// @Produce json
// @Param kind path string true "teams, players or matches"
// @Param X-Session-ID header string false "Session id"
// @Param request body catalog.ResetRequest false "Leagues"
// @Success 200 {object} catalog.ResetResult "Reset Result"
// @Failure 400 {object} map[string]string "Unknown Kind"
// @Router /catalog/{kind}/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	var req ResetRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	res, err := h.service.Reset(c.UserContext(), h.owner(c), c.Params("kind"), req.Leagues)
	if err != nil {
		return h.fail(c, "Catalog reset failed", err)
	}
	return c.JSON(res)
}

// HandleMore grows the visible window.
// @Summary Load More
// @Description Reveals the next page of accumulated records, or drains the next batch of teams.
// @Tags catalog
// @Produce json
// @Param kind path string true "teams, players or matches"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} catalog.MoreResult "Change and Window"
// @Failure 400 {object} map[string]string "Unknown Kind"
// @Router /catalog/{kind}/more [post]
func (h *Handler) HandleMore(c *fiber.Ctx) error {
	res, err := h.service.More(c.UserContext(), h.owner(c), c.Params("kind"))
	if err != nil {
		return h.fail(c, "Catalog load more failed", err)
	}
	return c.JSON(res)
}

// HandlePage returns the visible window.
// @Summary Visible Window
// @Tags catalog
// @Produce json
// @Param kind path string true "teams, players or matches"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} catalog.Page "Window"
// @Failure 404 {object} map[string]string "No Session"
// @Router /catalog/{kind} [get]
func (h *Handler) HandlePage(c *fiber.Ctx) error {
	page, err := h.service.Page(h.owner(c), c.Params("kind"))
	if err != nil {
		return h.fail(c, "Catalog page failed", err)
	}
	return c.JSON(page)
}

// HandleSearch filters the visible window by display name.
// @Summary Search Window
// @Tags catalog
// @Produce json
// @Param kind path string true "teams, players or matches"
// @Param q query string false "Case-insensitive name filter"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} catalog.Page "Filtered Window"
// @Failure 404 {object} map[string]string "No Session"
// @Router /catalog/{kind}/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	page, err := h.service.Search(h.owner(c), c.Params("kind"), c.Query("q"))
	if err != nil {
		return h.fail(c, "Catalog search failed", err)
	}
	return c.JSON(page)
}

// HandleEnrich runs a synchronous badge enrichment pass.
// @Summary Enrich Window
// @Tags catalog
// @Produce json
// @Param kind path string true "teams, players or matches"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} map[string]int "Updated Records"
// @Failure 404 {object} map[string]string "No Session"
// @Router /catalog/{kind}/enrich [post]
func (h *Handler) HandleEnrich(c *fiber.Ctx) error {
	updated, err := h.service.Enrich(c.UserContext(), h.owner(c), c.Params("kind"))
	if err != nil {
		return h.fail(c, "Catalog enrichment failed", err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

// HandleExport writes the visible window to object storage.
// @Summary Export Window
// @Tags catalog
// @Produce json
// @Param kind path string true "teams, players or matches"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} catalog.ExportResult "Snapshot"
// @Failure 404 {object} map[string]string "No Session"
// @Failure 503 {object} map[string]string "Export Disabled"
// @Router /catalog/{kind}/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	res, err := h.service.Export(c.UserContext(), h.owner(c), c.Params("kind"))
	if err != nil {
		return h.fail(c, "Catalog export failed", err)
	}
	return c.JSON(res)
}

// HandleListExports lists stored snapshots.
// @Summary List Snapshots
// @Tags catalog
// @Produce json
// @Param kind path string true "teams, players or matches"
// @Success 200 {array} catalog.ExportInfo "Snapshots"
// @Failure 503 {object} map[string]string "Export Disabled"
// @Router /catalog/{kind}/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	list, err := h.service.Exports(c.UserContext(), c.Params("kind"))
	if err != nil {
		return h.fail(c, "Snapshot listing failed", err)
	}
	if list == nil {
		list = []ExportInfo{}
	}
	return c.JSON(list)
}

// HandleGetExport downloads one stored snapshot.
// @Summary Get Snapshot
// @Tags catalog
// @Produce json
// @Param kind path string true "teams, players or matches"
// @Param name path string true "Snapshot file name"
// @Success 200 {object} catalog.Snapshot "Snapshot"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /catalog/{kind}/exports/{name} [get]
func (h *Handler) HandleGetExport(c *fiber.Ctx) error {
	exporter := h.service.Exporter()
	if exporter == nil {
		return h.fail(c, "Snapshot download failed", ErrExportDisabled)
	}

	obj, err := exporter.Open(c.UserContext(), c.Params("kind"), c.Params("name"))
	if err != nil {
		return h.fail(c, "Snapshot download failed", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return h.fail(c, "Snapshot download failed", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// HandleTeam returns the details of one team.
// @Summary Team Details
// @Tags catalog
// @Produce json
// @Param id path string true "Team id"
// @Success 200 {object} upstream.Team "Team"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /teams/{id} [get]
func (h *Handler) HandleTeam(c *fiber.Ctx) error {
	team, err := h.service.Team(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Team lookup failed", err)
	}
	return c.JSON(team)
}

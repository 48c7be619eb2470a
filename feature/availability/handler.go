package availability

import (
	"errors"
	"fmt"

	"pass-finder/core/availability"
	"pass-finder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for library availability.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = availability.Record{}
	return &Handler{service: service}
}

// RegisterRoutes registers the availability routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/libraries")
	group.Get("/", h.HandleList)
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/:id", h.HandleGet)
}

func (h *Handler) setCacheControl(c *fiber.Ctx) {
	if ttl := h.service.MaxAge(); ttl > 0 {
		c.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, s-maxage=%d", int(ttl.Seconds())))
		return
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
}

// HandleList returns the availability of every library location.
// @Summary List Library Availability
// @Description Returns one record per canonical library location with the availability of each tracked pass. Served from a short-lived cache.
// @Tags libraries
// @Produce json
// @Success 200 {array} availability.Record "Unified availability records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /libraries [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.List(c.UserContext())
	if err != nil {
		l.Error("Availability aggregation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	h.setCacheControl(c)
	return c.JSON(records)
}

// HandleGet returns the availability of one library location.
// @Summary Get Library Availability
// @Description Returns the unified availability record of a single location.
// @Tags libraries
// @Produce json
// @Param id path string true "Location ID (e.g. 'sjpl-AL')"
// @Success 200 {object} availability.Record "Unified availability record"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /libraries/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	record, err := h.service.Get(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("location %s not found", id)})
	}
	if err != nil {
		l.Error("Availability lookup failed", zap.String("location", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	h.setCacheControl(c)
	return c.JSON(record)
}

// HandleRefresh forces a new aggregation cycle.
// @Summary Refresh Library Availability
// @Description Discards the cached result and queries every upstream catalog again. This operation may take up to a minute.
// @Tags libraries
// @Produce json
// @Success 200 {array} availability.Record "Fresh unified availability records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /libraries/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Refreshing availability")

	records, err := h.service.Refresh(c.UserContext())
	if err != nil {
		l.Error("Availability refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.JSON(records)
}

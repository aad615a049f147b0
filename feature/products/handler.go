package products

import (
	"dbapi-compare/core/logger"
	"dbapi-compare/core/progress"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the products routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Get("/profiles", h.HandleProfiles)
	group.Post("/compare/:profile", h.HandleCompare)
}

// HandleProfiles lists the configured comparison profiles.
func (h *Handler) HandleProfiles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"profiles": h.service.ProfileNames()})
}

// HandleCompare runs one comparison for the named profile. The optional JSON
// body narrows the time range; without it the current day is compared. The
// response carries the run report and the collected progress lines.
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req RunRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	req.Profile = c.Params("profile")

	l.Info("Starting comparison run", zap.String("profile", req.Profile))

	col := &progress.Collector{}
	report, err := h.service.Compare(c.Context(), req, col)
	if err != nil {
		l.Error("Comparison run failed", zap.String("profile", req.Profile), zap.Error(err))
		status := fiber.StatusInternalServerError
		if _, lookupErr := h.service.profiles.Get(req.Profile); lookupErr != nil {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error(), "log": col.Lines()})
	}

	return c.JSON(fiber.Map{"report": report, "log": col.Lines()})
}

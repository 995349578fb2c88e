package players

import (
	"errors"

	"games-in-common/core/resolver"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for identifier resolution.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the resolve route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/resolve", h.HandleResolve)
}

// HandleResolve resolves identifiers to Steam IDs.
// @Summary Resolve Players
// @Description Map Steam IDs, vanity names and profile URLs to canonical Steam IDs.
// @Tags players
// @Produce json
// @Param players query string true "Comma separated identifiers"
// @Success 200 {object} players.Report "Resolved players, possibly with errors"
// @Failure 400 {object} players.Report "Invalid input"
// @Router /resolve [get]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	report, err := h.service.Resolve(c.UserContext(), resolver.Split(c.Query("players")))
	if errors.Is(err, ErrNoPlayers) {
		return c.Status(fiber.StatusBadRequest).JSON(report)
	}
	if report == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

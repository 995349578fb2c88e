package games

import (
	"errors"

	"games-in-common/core/logger"
	"games-in-common/core/resolver"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for games in common.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the games routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/games")
	group.Get("/common", h.HandleGetCommonGames)
}

// HandleGetCommonGames returns the games a group of players has in common.
// @Summary Games In Common
// @Description Resolve the given players and list the games they all own, plus games owned by everyone but one player.
// @Tags games
// @Produce json
// @Param players query string true "Comma separated Steam IDs, vanity names or profile URLs"
// @Success 200 {object} games.Report "Report"
// @Failure 400 {object} games.Report "Invalid input"
// @Failure 422 {object} games.Report "Lookup failed for one or more players"
// @Router /games/common [get]
func (h *Handler) HandleGetCommonGames(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	players := resolver.Split(c.Query("players"))

	report, err := h.service.CommonGames(c.UserContext(), players)
	switch {
	case errors.Is(err, ErrTooFewPlayers), errors.Is(err, ErrTooManyPlayers):
		return c.Status(fiber.StatusBadRequest).JSON(report)
	case err != nil:
		l.Info("Common games lookup failed", zap.Strings("errors", report.Errors))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(report)
	}

	return c.JSON(report)
}

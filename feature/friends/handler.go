package friends

import (
	"errors"

	"games-in-common/core/failure"
	"games-in-common/core/logger"
	"games-in-common/core/resolver"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for friend listings.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the friends routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/friends", h.HandleGetFriends)
}

// HandleGetFriends lists the friends of the given players.
// @Summary Friends Of
// @Description List the union of the friends of the given players with their nicknames. Players that fail are reported in errors.
// @Tags friends
// @Produce json
// @Param players query string true "Comma separated Steam IDs, vanity names or profile URLs"
// @Success 200 {object} friends.Report "Report, possibly with errors"
// @Failure 400 {object} friends.Report "Invalid input"
// @Failure 422 {object} friends.Report "No player could be listed"
// @Router /friends [get]
func (h *Handler) HandleGetFriends(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.FriendsOf(c.UserContext(), resolver.Split(c.Query("players")))
	var partial *failure.MultiFailure
	switch {
	case errors.Is(err, ErrNoPlayers), errors.Is(err, ErrTooManyPlayers):
		return c.Status(fiber.StatusBadRequest).JSON(report)
	case err != nil && report.Result == nil:
		l.Info("Friends lookup failed", zap.Strings("errors", report.Errors))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(report)
	case errors.As(err, &partial):
		l.Debug("Friends lookup partially failed", zap.Int("failures", partial.Len()))
	}

	return c.JSON(report)
}

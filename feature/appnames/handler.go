package appnames

import (
	"strconv"

	"games-in-common/core/logger"
	"games-in-common/core/steam"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for app names.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the app name routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/appnames")
	group.Post("/seed", h.HandleSeed)
	group.Get("/:appid", h.HandleGetName)
}

// HandleSeed loads the newest app list snapshot into the name cache.
// @Summary Seed App Names
// @Description Bulk-load app names from the newest app list snapshot, taking a new snapshot first when refresh is set or none exists.
// @Tags appnames
// @Produce json
// @Param refresh query bool false "Fetch a fresh app list first"
// @Success 200 {object} appnames.SeedReport "Seed Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /appnames/seed [post]
func (h *Handler) HandleSeed(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Seed(c.UserContext(), c.QueryBool("refresh", false))
	if err != nil {
		l.Error("App name seeding failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleGetName returns the name of one app.
// @Summary Get App Name
// @Description Look up the name of an app through the name cache.
// @Tags appnames
// @Produce json
// @Param appid path int true "Steam app id"
// @Success 200 {object} map[string]any "App"
// @Failure 400 {object} map[string]string "Invalid app id"
// @Failure 404 {object} map[string]string "Unknown app"
// @Router /appnames/{appid} [get]
func (h *Handler) HandleGetName(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("appid"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid app id",
		})
	}

	name, ok := h.service.Name(c.UserContext(), steam.AppID(id))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no name found for app " + strconv.Itoa(id),
		})
	}

	return c.JSON(fiber.Map{"app_id": id, "name": name})
}

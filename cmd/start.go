package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"games-in-common/core/loader"
	"games-in-common/core/logger"
	"games-in-common/core/metrics"
	"games-in-common/core/middleware/auth"
	"games-in-common/core/middleware/rayid"
	"games-in-common/feature/appnames"
	"games-in-common/feature/friends"
	"games-in-common/feature/games"
	"games-in-common/feature/players"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "games-in-common/docs/swagger"
)

// @title Games In Common API
// @version 1.0
// @description Find the Steam games a group of players can play together.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the games-in-common server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp(cmd.Context())
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer a.Close()
		logg := a.logger
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		mgr := loader.NewManager()
		mgr.Register(games.NewFeature(a.games))
		mgr.Register(friends.NewFeature(a.friends))
		mgr.Register(players.NewFeature(a.players))
		mgr.Register(appnames.NewFeature(a.appnames))
		mgr.Register(a.history)

		// RayID must be first to trace everything.
		app.Use(rayid.New())

		app.Use(logger.Requests(logg))

		// Swagger stays public; it is registered ahead of the auth middleware.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey: a.cfg.Server.ApiKey,
			Skip:   []string{"/metrics"},
		}))
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(a.registry)))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		for _, f := range mgr.Features() {
			logg.Info("Feature", zap.String("name", f.Name()), zap.Bool("enabled", f.IsEnabled()))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// Package logger builds the zap logger used across the service.
//
// Components receive a *zap.Logger by injection and usually call Named on it
// ("steam", "catalog", "resolver", ...), so every line says which layer produced it.
// Level accepts any zap level name; debug also switches to the development preset.
// Format is json (default) or console.
//
// For HTTP requests, WithRayID attaches the ray id set by the rayid middleware and
// Requests writes one summary line per request:
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	app.Use(rayid.New(), logger.Requests(log))
//
//	// In a handler:
//	logger.WithRayID(log, c).Warn("Lookup failed", zap.Error(err))
package logger

// Package loader registers HTTP features with the fiber app.
//
// A feature is a service plus its handler, wrapped in a type that implements Feature.
// The start command registers every feature with a Manager and calls LoadAll once;
// features whose dependencies are missing (no database for history, no object storage
// for app names) report IsEnabled false and are skipped. Names must be unique.
//
//	mgr := loader.NewManager()
//	mgr.Register(games.NewFeature(gamesSvc))
//	mgr.Register(history.NewFeature(db, logger))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader

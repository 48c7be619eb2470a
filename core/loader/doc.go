// Package loader mounts self-contained HTTP features onto the Fiber app.
//
// A feature bundles its service, handler and routes behind the Feature interface. The
// Manager keeps features in registration order and LoadAll mounts the enabled ones,
// stopping at the first feature that fails to load.
//
// Pass Finder registers two features in cmd/start.go: availability, which serves the
// unified records from the cache, and integrity, which reports on the location registry.
//
//	mgr := loader.NewManager(logger)
//	mgr.Register(availability.NewFeature(cache, logger))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader

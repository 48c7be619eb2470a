// Package config provides configuration management for Pass Finder.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, timeouts, swagger)
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials and bucket for the published registry
//   - Database: optional MySQL or SQLite connection holding the registry table
//   - Registry: where the location registry is loaded from
//   - Sources: catalog endpoints, fetch timeout and concurrency of the adapters
//   - Scrape: headless browser settings
//   - Cache: aggregation cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Cache.TTLSeconds)
package config

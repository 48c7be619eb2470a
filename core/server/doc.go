// Package server holds the HTTP server configuration.
//
// While the cmd package handles the server startup, this package defines the configuration
// structure for the listener: the port, request timeouts and whether the Swagger UI is served.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by cmd/start.go to configure the Fiber application.
package server

// Package integrity provides health checks for the location registry.
//
// # Checks Provided
//
//   - Registry: every configured library system has canonical locations, scrape-only systems have exactly one.
//   - Database: the registry table matches the Location model (columns, types) and has rows.
//   - Storage: the registry document exists in the bucket and parses.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/registry : Runs the registry coverage check.
//   - GET /integrity/database : Runs the schema check (supports ?fix=true).
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity

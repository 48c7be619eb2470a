// Package checks implements the individual integrity checks of the registry: its
// coverage of the configured library systems, the SQL table schema and the document in
// object storage.
package checks

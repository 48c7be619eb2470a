// Package registry holds the canonical location registry.
//
// The registry is the ordered list of physical library branches produced by an offline
// build. The aggregation core only reads it: a Registry is immutable once constructed and
// its order is the order of every availability response.
//
// # Sources
//
//   - embedded: a default registry compiled into the binary (data/locations.json)
//   - file: a JSON or YAML document on disk
//   - storage: a JSON or YAML document in the MinIO/S3 bucket
//   - database: the library_locations table
//
// PublishToStorage and PublishToDatabase copy a registry into the last two, so an
// operator can build it once and share it between instances.
package registry

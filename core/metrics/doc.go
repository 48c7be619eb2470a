// Package metrics exposes Prometheus collectors for adapter calls, unresolved branch
// names, aggregation cycles and cache hits.
package metrics

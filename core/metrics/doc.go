// Package metrics declares the Prometheus collectors of the catalog service.
//
// Collectors are registered with the default registry on import and exposed by the
// HTTP server at /metrics.
package metrics

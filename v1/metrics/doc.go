// Package metrics exposes Prometheus metrics for the service on a dedicated
// HTTP server.
//
// Each service gets its own isolated registry with a constant "service" label
// and a small set of built-in instruments: HTTP request counts and latencies,
// search operations by mode, and ingested record counts. Additional
// collectors can be registered through CreateCounter / CreateHistogram.
//
// The package ships an Fx module that starts the /metrics server on
// application start and shuts it down gracefully on stop.
package metrics

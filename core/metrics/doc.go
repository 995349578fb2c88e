// Package metrics exposes Prometheus counters and histograms for cache and Steam traffic.
//
// Components receive a Recorder so that tests can pass Nop and production wiring can pass
// a Collector registered on a prometheus.Registerer. The HTTP server mounts Handler at
// /metrics through the Fiber adaptor.
package metrics

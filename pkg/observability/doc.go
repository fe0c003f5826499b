// Package observability exposes Prometheus instrumentation for the
// branching engine. Registration is opt-in: the core stays silent and
// dependency-free unless the host wires a Metrics in.
package observability

// Package ports declares the interfaces between the branching engine
// and its collaborators: where form definitions come from and where
// in-progress answer sets are kept. Adapters for concrete backends
// live under pkg/adapters.
package ports

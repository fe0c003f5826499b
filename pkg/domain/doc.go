// Package domain contains the core entities of the branching model:
// questions, branch rules, conditions, answers and the tri-state
// next-question reference.
//
// Everything here is plain data. The types carry their own JSON/YAML
// codecs so that loaders and the HTTP adapter agree on one wire shape,
// but no behavior beyond (de)serialization and canonicalization lives
// in this package. Traversal logic belongs to internal/runtime.
package domain

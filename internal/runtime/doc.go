// Package runtime is the traversal core of the branching engine: the
// condition evaluator, the next-question resolver, the path projector
// and the eligibility/value queries.
//
// The package has one hard rule: nothing here returns an error or
// panics. The engine runs inside interactive render loops (often on
// every keystroke), so every anomaly — missing answers, unknown
// operators, dangling targets, cycles — degrades to a defined fallback
// (false, End, or a truncated path) instead of failing the caller.
package runtime

// Package gen turns a widening relation into the generic Go API of package
// upcast.
//
// For every kind K it emits a KSource constraint (kinds that widen to K) and
// a KTarget constraint (kinds K widens to). Each constraint embeds the
// constraints of K's direct neighbours, so the transitive closure is computed
// by the Go type checker and a missing widening path is a compile error.
package gen

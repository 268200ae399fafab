// Package relation holds the widening relation between numeric kinds.
//
// The direct facts are declared in facts.cue and embedded into the binary.
// Every kind implicitly widens to itself; the remaining facts are validated
// to be strict, sign-preserving, acyclic and unambiguous before a Relation is
// built. Path resolution walks the facts backwards from the target, which is
// the same recursion the generated constraints encode for the compiler.
package relation

package relation

import (
	"github.com/roach88/upcast/internal/kind"
)

// Relation is a validated widening relation. It is immutable once built and
// safe for concurrent use.
type Relation struct {
	facts []Fact
	succ  map[kind.Kind][]kind.Kind
	pred  map[kind.Kind][]kind.Kind
}

// New validates facts and indexes them. The error, if any, is
// ValidationErrors.
func New(facts []Fact) (*Relation, error) {
	if errs := Validate(facts); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	r := &Relation{
		facts: append([]Fact(nil), facts...),
		succ:  make(map[kind.Kind][]kind.Kind),
		pred:  make(map[kind.Kind][]kind.Kind),
	}
	for _, f := range facts {
		r.succ[f.From] = append(r.succ[f.From], f.To)
		r.pred[f.To] = append(r.pred[f.To], f.From)
	}
	return r, nil
}

// Default builds the relation declared by the embedded fact table.
func Default() (*Relation, error) {
	facts, err := Load(defaultFacts, DefaultFactsFile)
	if err != nil {
		return nil, err
	}
	return New(facts)
}

// MustDefault is like Default but panics if the embedded table is invalid.
func MustDefault() *Relation {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// Facts returns the declared direct facts in declaration order. Reflexive
// facts are implicit and not included.
func (r *Relation) Facts() []Fact {
	return append([]Fact(nil), r.facts...)
}

// Successors returns the kinds k directly widens to, in declaration order.
func (r *Relation) Successors(k kind.Kind) []kind.Kind {
	return append([]kind.Kind(nil), r.succ[k]...)
}

// Predecessors returns the kinds that directly widen to k, in declaration order.
func (r *Relation) Predecessors(k kind.Kind) []kind.Kind {
	return append([]kind.Kind(nil), r.pred[k]...)
}

// Direct reports whether from widens to to in a single step. Every valid kind
// directly widens to itself.
func (r *Relation) Direct(from, to kind.Kind) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, k := range r.succ[from] {
		if k == to {
			return true
		}
	}
	return false
}

// Path returns the widening chain from from to to, both ends included.
//
// The identity fact is the base case. Otherwise to is reached through one of
// its direct predecessors: resolve from to that predecessor, then take the
// final step. Validation guarantees at most one predecessor succeeds.
func (r *Relation) Path(from, to kind.Kind) ([]kind.Kind, bool) {
	if !from.Valid() || !to.Valid() {
		return nil, false
	}
	if from == to {
		return []kind.Kind{from}, true
	}
	for _, mid := range r.pred[to] {
		if path, ok := r.Path(from, mid); ok {
			return append(path, to), true
		}
	}
	return nil, false
}

// Widens reports whether a widening path exists from from to to.
func (r *Relation) Widens(from, to kind.Kind) bool {
	_, ok := r.Path(from, to)
	return ok
}

// Sources returns every kind that widens to to, in canonical kind order.
func (r *Relation) Sources(to kind.Kind) []kind.Kind {
	var out []kind.Kind
	for _, k := range kind.All() {
		if r.Widens(k, to) {
			out = append(out, k)
		}
	}
	return out
}

// Targets returns every kind from widens to, in canonical kind order.
func (r *Relation) Targets(from kind.Kind) []kind.Kind {
	var out []kind.Kind
	for _, k := range kind.All() {
		if r.Widens(from, k) {
			out = append(out, k)
		}
	}
	return out
}

// Closure returns every pair joined by a widening path, reflexive pairs
// included, ordered by source then target.
func (r *Relation) Closure() []Fact {
	var out []Fact
	for _, from := range kind.All() {
		for _, to := range r.Targets(from) {
			out = append(out, Fact{From: from, To: to})
		}
	}
	return out
}

package relation

import (
	"fmt"
	"strings"

	"github.com/roach88/upcast/internal/kind"
)

// Validation error codes (E200-E299)
const (
	ErrInvalidKind   = "E201" // fact names an unknown kind
	ErrDuplicateFact = "E202" // same fact declared twice
	ErrReflexiveFact = "E203" // reflexive facts are implicit
	ErrSignCrossing  = "E204" // signed and unsigned integers never mix
	ErrNarrowingFact = "E205" // fact does not strictly increase range
	ErrCycle         = "E206" // fact graph is not acyclic
	ErrAmbiguousPath = "E207" // two distinct chains connect the same pair
)

// ValidationError represents a single violation in a fact table.
type ValidationError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
	Code    string `json:"code" yaml:"code"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidationErrors is returned by New when a fact table is rejected.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("invalid widening relation: %s", strings.Join(msgs, "; "))
}

// Validate checks a fact table against the widening invariants.
// Returns all errors found (does not fail-fast).
//
// Direct facts must strictly increase range within a class, or go from an
// integer class to float. Since no fact leaves float for an integer kind,
// rejecting direct sign crossings also rules out transitive ones.
func Validate(facts []Fact) []ValidationError {
	var errs []ValidationError
	seen := make(map[Fact]bool)

	for i, f := range facts {
		field := fmt.Sprintf("facts[%d]", i)

		if !f.From.Valid() || !f.To.Valid() {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("fact %s names an unknown kind", f),
				Code:    ErrInvalidKind,
				Line:    f.Line,
			})
			continue
		}

		if seen[f.pair()] {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("duplicate fact %s", f),
				Code:    ErrDuplicateFact,
				Line:    f.Line,
			})
			continue
		}
		seen[f.pair()] = true

		if f.Reflexive() {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%s widens to itself implicitly", f.From),
				Code:    ErrReflexiveFact,
				Line:    f.Line,
			})
			continue
		}

		if crossesSign(f.From, f.To) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("fact %s mixes %s and %s integers", f, f.From.Class(), f.To.Class()),
				Code:    ErrSignCrossing,
				Line:    f.Line,
			})
			continue
		}

		if !strictlyWider(f.From, f.To) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("fact %s is not a widening", f),
				Code:    ErrNarrowingFact,
				Line:    f.Line,
			})
		}
	}

	graph := buildFactGraph(facts)
	cycles := findCycles(graph)
	for _, path := range cycles {
		errs = append(errs, ValidationError{
			Field:   "facts",
			Message: fmt.Sprintf("cycle detected: %s", joinKinds(path)),
			Code:    ErrCycle,
		})
	}
	if len(cycles) > 0 {
		return errs
	}

	for _, amb := range findAmbiguities(graph) {
		errs = append(errs, ValidationError{
			Field:   "facts",
			Message: fmt.Sprintf("%d distinct paths from %s to %s", amb.paths, amb.from, amb.to),
			Code:    ErrAmbiguousPath,
		})
	}

	return errs
}

func crossesSign(from, to kind.Kind) bool {
	fc, tc := from.Class(), to.Class()
	return fc.IsInteger() && tc.IsInteger() && fc != tc
}

func strictlyWider(from, to kind.Kind) bool {
	fc, tc := from.Class(), to.Class()
	switch {
	case fc == tc:
		return to.Bits() > from.Bits()
	case fc.IsInteger() && tc == kind.Float:
		return true
	default:
		return false
	}
}

type ambiguity struct {
	from, to kind.Kind
	paths    int
}

// findAmbiguities counts distinct paths between every ordered pair of an
// acyclic graph and reports the pairs joined by more than one.
func findAmbiguities(graph factGraph) []ambiguity {
	memo := make(map[[2]kind.Kind]int)
	var count func(from, to kind.Kind) int
	count = func(from, to kind.Kind) int {
		if from == to {
			return 1
		}
		key := [2]kind.Kind{from, to}
		if n, ok := memo[key]; ok {
			return n
		}
		n := 0
		for _, next := range graph[from] {
			n += count(next, to)
		}
		memo[key] = n
		return n
	}

	var out []ambiguity
	for _, from := range kind.All() {
		for _, to := range kind.All() {
			if from == to {
				continue
			}
			if n := count(from, to); n > 1 {
				out = append(out, ambiguity{from: from, to: to, paths: n})
			}
		}
	}
	return out
}

func joinKinds(ks []kind.Kind) string {
	names := make([]string, len(ks))
	for i, k := range ks {
		names[i] = k.String()
	}
	return strings.Join(names, " → ")
}

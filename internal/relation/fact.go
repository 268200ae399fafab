package relation

import (
	"fmt"

	"github.com/roach88/upcast/internal/kind"
)

// Fact is a direct widening fact: a value of From is representable as To.
type Fact struct {
	From kind.Kind `json:"from" yaml:"from"`
	To   kind.Kind `json:"to" yaml:"to"`
	Line int       `json:"line,omitempty" yaml:"line,omitempty"` // declaration line, 0 if unknown
}

func (f Fact) String() string {
	return fmt.Sprintf("%s -> %s", f.From, f.To)
}

// Reflexive reports whether f is an identity fact.
func (f Fact) Reflexive() bool {
	return f.From == f.To
}

// pair drops the declaration line so facts can be compared.
func (f Fact) pair() Fact {
	return Fact{From: f.From, To: f.To}
}

package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/roach88/upcast/internal/kind"
	"github.com/roach88/upcast/internal/relation"
)

// ErrStale is returned by Check when existing code differs from what
// Generate would write.
var ErrStale = errors.New("generated code is out of date")

// Options control code generation.
type Options struct {
	Package string // package clause, defaults to "upcast"
	Source  string // fact table name recorded in the header
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "upcast"
	}
	if o.Source == "" {
		o.Source = relation.DefaultFactsFile
	}
	return o
}

// Generate renders the widening API for rel as gofmt'd Go source.
func Generate(rel *relation.Relation, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by upcastgen from %s. DO NOT EDIT.\n\n", opts.Source)
	fmt.Fprintf(&buf, "package %s\n", opts.Package)

	writeNumber(&buf)
	for _, k := range kind.All() {
		writeConstraints(&buf, rel, k)
	}
	for _, k := range kind.All() {
		round, err := toRounding(rel, k)
		if err != nil {
			return nil, err
		}
		writeTo(&buf, k, round)
	}
	for _, k := range kind.All() {
		round, err := fromRounding(rel, k)
		if err != nil {
			return nil, err
		}
		writeFrom(&buf, k, round)
	}
	for _, f := range rel.Facts() {
		writeStep(&buf, f)
	}
	writeIdentity(&buf)
	writeIsFloat(&buf)

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

// Check reports ErrStale when existing differs from the generated code.
func Check(rel *relation.Relation, opts Options, existing []byte) error {
	want, err := Generate(rel, opts)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, existing) {
		return ErrStale
	}
	return nil
}

func writeNumber(w io.Writer) {
	terms := make([]string, 0, len(kind.All()))
	for _, k := range kind.All() {
		terms = append(terms, "~"+k.String())
	}
	fmt.Fprintf(w, "\n// Number is any numeric kind known to the widening relation.\n")
	fmt.Fprintf(w, "type Number interface {\n\t%s\n}\n", strings.Join(terms, " | "))
}

func sourceName(k kind.Kind) string { return k.Ident() + "Source" }

func targetName(k kind.Kind) string { return k.Ident() + "Target" }

// writeConstraints emits the source and target sets of k. A source set is k
// plus the source sets of its predecessors; a target set is k plus the
// target sets of its successors.
func writeConstraints(w io.Writer, rel *relation.Relation, k kind.Kind) {
	sources := []string{"~" + k.String()}
	for _, p := range rel.Predecessors(k) {
		sources = append(sources, sourceName(p))
	}
	fmt.Fprintf(w, "\n// %s is satisfied by every kind that widens to %s.\n", sourceName(k), k)
	fmt.Fprintf(w, "type %s interface {\n\t%s\n}\n", sourceName(k), strings.Join(sources, " | "))

	targets := []string{"~" + k.String()}
	for _, s := range rel.Successors(k) {
		targets = append(targets, targetName(s))
	}
	fmt.Fprintf(w, "\n// %s is satisfied by every kind %s widens to.\n", targetName(k), k)
	fmt.Fprintf(w, "type %s interface {\n\t%s\n}\n", targetName(k), strings.Join(targets, " | "))
}

// roundingKind returns the first float kind on the path between an integer
// kind and a float kind. Integer steps are exact and float steps only widen,
// so converting through that kind reproduces the whole chain.
func roundingKind(rel *relation.Relation, from, to kind.Kind) (kind.Kind, bool) {
	if !from.Class().IsInteger() || to.Class() != kind.Float {
		return kind.Invalid, false
	}
	path, ok := rel.Path(from, to)
	if !ok {
		return kind.Invalid, false
	}
	for _, k := range path {
		if k.Class() == kind.Float {
			return k, true
		}
	}
	return kind.Invalid, false
}

// commonRounding returns the single float kind the given integer-to-float
// pairs round through, or kind.Invalid when no pair rounds.
func commonRounding(rel *relation.Relation, subject kind.Kind, pairs [][2]kind.Kind) (kind.Kind, error) {
	round := kind.Invalid
	for _, p := range pairs {
		f, ok := roundingKind(rel, p[0], p[1])
		if !ok {
			continue
		}
		if round != kind.Invalid && round != f {
			return kind.Invalid, fmt.Errorf("%s: integer kinds round through both %s and %s", subject, round, f)
		}
		round = f
	}
	return round, nil
}

// toRounding returns the kind integer sources of k round through before the
// final conversion, or kind.Invalid when a single conversion is exact.
func toRounding(rel *relation.Relation, k kind.Kind) (kind.Kind, error) {
	if k.Class() != kind.Float {
		return kind.Invalid, nil
	}
	var pairs [][2]kind.Kind
	for _, s := range rel.Sources(k) {
		pairs = append(pairs, [2]kind.Kind{s, k})
	}
	round, err := commonRounding(rel, k, pairs)
	if err != nil || round == k {
		return kind.Invalid, err
	}
	return round, nil
}

// fromRounding returns the kind an integer k rounds through on its way to a
// float target, or kind.Invalid when every float target is that kind.
func fromRounding(rel *relation.Relation, k kind.Kind) (kind.Kind, error) {
	if !k.Class().IsInteger() {
		return kind.Invalid, nil
	}
	var pairs [][2]kind.Kind
	for _, t := range rel.Targets(k) {
		pairs = append(pairs, [2]kind.Kind{k, t})
	}
	round, err := commonRounding(rel, k, pairs)
	if err != nil {
		return kind.Invalid, err
	}
	for _, t := range rel.Targets(k) {
		if t.Class() == kind.Float && t != round {
			return round, nil
		}
	}
	return kind.Invalid, nil
}

func writeTo(w io.Writer, k, round kind.Kind) {
	fmt.Fprintf(w, "\n// To%s widens v to %s. It only compiles when S widens to %s.\n", k.Ident(), k, k)
	if round == kind.Invalid {
		fmt.Fprintf(w, "func To%s[S %s](v S) %s {\n\treturn %s(v)\n}\n", k.Ident(), sourceName(k), k, k)
		return
	}
	fmt.Fprintf(w, "// Integer sources round to %s first.\n", round)
	fmt.Fprintf(w, "func To%s[S %s](v S) %s {\n", k.Ident(), sourceName(k), k)
	fmt.Fprintf(w, "\tif isFloat[S]() {\n\t\treturn %s(v)\n\t}\n", k)
	fmt.Fprintf(w, "\treturn %s(%s(v))\n}\n", k, round)
}

func writeFrom(w io.Writer, k, round kind.Kind) {
	fmt.Fprintf(w, "\n// From%s widens v to T. It only compiles when %s widens to T.\n", k.Ident(), k)
	if round == kind.Invalid {
		fmt.Fprintf(w, "func From%s[T %s](v %s) T {\n\treturn T(v)\n}\n", k.Ident(), targetName(k), k)
		return
	}
	fmt.Fprintf(w, "// Float targets receive v rounded to %s first.\n", round)
	fmt.Fprintf(w, "func From%s[T %s](v %s) T {\n", k.Ident(), targetName(k), k)
	fmt.Fprintf(w, "\tif isFloat[T]() {\n\t\treturn T(%s(v))\n\t}\n", round)
	fmt.Fprintf(w, "\treturn T(v)\n}\n")
}

func writeStep(w io.Writer, f relation.Fact) {
	name := f.From.Ident() + "To" + f.To.Ident()
	fmt.Fprintf(w, "\n// %s converts along the single declared fact %s.\n", name, f)
	fmt.Fprintf(w, "// Prefer To%s or From%s, which follow widening paths.\n", f.To.Ident(), f.From.Ident())
	fmt.Fprintf(w, "func %s(v %s) %s {\n\treturn %s(v)\n}\n", name, f.From, f.To, f.To)
}

func writeIdentity(w io.Writer) {
	fmt.Fprintf(w, "\n// Identity is the reflexive widening of every kind.\n")
	fmt.Fprintf(w, "func Identity[K Number](v K) K {\n\treturn v\n}\n")
}

func writeIsFloat(w io.Writer) {
	fmt.Fprintf(w, "\n// isFloat reports whether N is a floating-point kind. The answer depends only\n")
	fmt.Fprintf(w, "// on N, so each instantiation reduces it to a constant.\n")
	fmt.Fprintf(w, "func isFloat[N Number]() bool {\n\tvar half N = 1\n\thalf /= 2\n\treturn half != 0\n}\n")
}

package relation

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/upcast/internal/kind"
)

// DefaultFactsFile is the name the embedded table is compiled under.
const DefaultFactsFile = "facts.cue"

//go:embed facts.cue
var defaultFacts []byte

// DefaultFacts returns the embedded CUE source of the fact table.
func DefaultFacts() []byte {
	out := make([]byte, len(defaultFacts))
	copy(out, defaultFacts)
	return out
}

// Load error codes (E001-E099)
const (
	ErrCodeReadFailed    = "E001" // fact file could not be read
	ErrCodeCompileFailed = "E002" // CUE syntax or schema error
	ErrCodeNoFacts       = "E003" // no facts list in the source
	ErrCodeBadFact       = "E004" // fact entry could not be decoded
)

// LoadError reports a fact table that could not be loaded.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadFile reads and loads a CUE fact table from disk.
func LoadFile(path string) ([]Fact, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading fact table: %v", err)}
	}
	return Load(src, path)
}

// Load compiles a CUE fact table and decodes its facts list in declaration
// order. It does not validate the relation; see Validate.
func Load(src []byte, filename string) ([]Fact, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueLoadError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(err)
	}

	factsVal := v.LookupPath(cue.ParsePath("facts"))
	if !factsVal.Exists() {
		return nil, &LoadError{Code: ErrCodeNoFacts, Message: "facts list is required", Pos: v.Pos()}
	}
	iter, err := factsVal.List()
	if err != nil {
		return nil, cueLoadError(err)
	}

	var facts []Fact
	for iter.Next() {
		f, err := decodeFact(iter.Value())
		if err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	return facts, nil
}

func decodeFact(v cue.Value) (Fact, error) {
	from, err := decodeKind(v, "from")
	if err != nil {
		return Fact{}, err
	}
	to, err := decodeKind(v, "to")
	if err != nil {
		return Fact{}, err
	}
	f := Fact{From: from, To: to}
	if pos := v.Pos(); pos.IsValid() {
		f.Line = pos.Line()
	}
	return f, nil
}

func decodeKind(v cue.Value, field string) (kind.Kind, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return kind.Invalid, &LoadError{Code: ErrCodeBadFact, Message: fmt.Sprintf("fact is missing %q", field), Pos: v.Pos()}
	}
	name, err := fv.String()
	if err != nil {
		return kind.Invalid, cueLoadError(err)
	}
	k, err := kind.Parse(name)
	if err != nil {
		return kind.Invalid, &LoadError{Code: ErrCodeBadFact, Message: err.Error(), Pos: fv.Pos()}
	}
	return k, nil
}

// cueLoadError keeps the first CUE error and its position.
func cueLoadError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: ErrCodeCompileFailed, Message: err.Error()}
	}
	first := errs[0]
	loadErr := &LoadError{Code: ErrCodeCompileFailed, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		loadErr.Pos = positions[0]
	}
	return loadErr
}

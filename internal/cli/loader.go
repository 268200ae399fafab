package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/roach88/upcast/internal/relation"
)

// CLI error codes (E300-E399). Load and validation codes come from the
// relation package.
const (
	ErrCodeInvalidArgs    = "E300" // bad positional argument or flag combination
	ErrCodeNoPath         = "E301" // no widening path between two kinds
	ErrCodeStale          = "E302" // generated file is out of date
	ErrCodeWriteFailed    = "E303" // output file could not be written
	ErrCodeGenerateFailed = "E304" // generator rejected the relation
)

// loadedRelation is a relation together with the name of its fact table.
type loadedRelation struct {
	Rel    *relation.Relation
	Facts  []relation.Fact
	Source string
}

// loadFacts reads the fact table selected by --facts without validating it.
func loadFacts(opts *RootOptions, f *OutputFormatter) ([]relation.Fact, string, error) {
	if opts.Facts == "" {
		f.VerboseLog("Using embedded fact table %s", relation.DefaultFactsFile)
		facts, err := relation.Load(relation.DefaultFacts(), relation.DefaultFactsFile)
		return facts, relation.DefaultFactsFile, err
	}

	f.VerboseLog("Loading fact table %s", opts.Facts)
	facts, err := relation.LoadFile(opts.Facts)
	return facts, filepath.Base(opts.Facts), err
}

// loadRelation loads and validates the selected fact table. Failures are
// reported through the formatter and returned as ExitError.
func loadRelation(opts *RootOptions, f *OutputFormatter) (*loadedRelation, error) {
	facts, source, err := loadFacts(opts, f)
	if err != nil {
		return nil, reportLoadError(f, err)
	}
	f.VerboseLog("Loaded %d fact(s) from %s", len(facts), source)

	rel, err := relation.New(facts)
	if err != nil {
		var verrs relation.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			_ = f.Error(verrs[0].Code, verrs[0].Message, []relation.ValidationError(verrs))
			return nil, WrapExitError(ExitFailure, fmt.Sprintf("invalid fact table %s", source), err)
		}
		return nil, reportLoadError(f, err)
	}
	return &loadedRelation{Rel: rel, Facts: facts, Source: source}, nil
}

func reportLoadError(f *OutputFormatter, err error) error {
	var loadErr *relation.LoadError
	if errors.As(err, &loadErr) {
		_ = f.Error(loadErr.Code, loadErr.Error(), nil)
		return WrapExitError(ExitCommandError, loadErr.Code, err)
	}
	_ = f.Error(relation.ErrCodeCompileFailed, err.Error(), nil)
	return WrapExitError(ExitCommandError, relation.ErrCodeCompileFailed, err)
}

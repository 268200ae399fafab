package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/upcast/internal/relation"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                       `json:"valid" yaml:"valid"`
	Facts  int                        `json:"facts" yaml:"facts"`
	Pairs  int                        `json:"pairs,omitempty" yaml:"pairs,omitempty"`
	Errors []relation.ValidationError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the widening fact table",
		Long: `Validate the widening fact table without generating code.

Every fact must strictly widen, never mix signed and unsigned integers,
and the facts together must be acyclic with at most one path per pair
of kinds. All violations are reported, not just the first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	facts, source, err := loadFacts(opts, formatter)
	if err != nil {
		return reportLoadError(formatter, err)
	}
	formatter.VerboseLog("Validating %d fact(s) from %s", len(facts), source)

	if errs := relation.Validate(facts); len(errs) > 0 {
		return outputValidationErrors(formatter, len(facts), errs)
	}

	rel, err := relation.New(facts)
	if err != nil {
		return WrapExitError(ExitFailure, "building relation", err)
	}
	pairs := len(rel.Closure())

	result := ValidationResult{Valid: true, Facts: len(facts), Pairs: pairs}
	text := fmt.Sprintf("✓ Widening relation valid (%d facts, %d widening pairs)", len(facts), pairs)
	return formatter.Success(result, text)
}

// outputValidationErrors outputs every validation error.
func outputValidationErrors(formatter *OutputFormatter, facts int, errs []relation.ValidationError) error {
	failure := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))

	if formatter.structured() {
		resp := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Facts: facts, Errors: errs},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}
		if err := formatter.encode(resp); err != nil {
			return err
		}
		return failure
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, e := range errs {
		if e.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d\n", e.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", e.Code, e.Message)
	}
	return failure
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/upcast/internal/gen"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output  string // output file path; stdout when empty
	Package string // package clause of the generated file
	Check   bool   // compare instead of writing
}

// GenerateResult summarizes a generate run.
type GenerateResult struct {
	Output  string `json:"output" yaml:"output"`
	Source  string `json:"source" yaml:"source"`
	Facts   int    `json:"facts" yaml:"facts"`
	Bytes   int    `json:"bytes" yaml:"bytes"`
	Checked bool   `json:"checked,omitempty" yaml:"checked,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the widening API",
		Long: `Generate the Go source of package upcast from the fact table.

Each kind gets a Source and a Target constraint whose unions embed the
constraints of its direct neighbours, so the Go compiler resolves every
widening path. With --check the file named by --output is compared with
the generated code instead of being written.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().StringVar(&opts.Package, "package", "upcast", "package name of the generated file")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "fail if the output file is out of date")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Check && opts.Output == "" {
		msg := "--check requires --output"
		_ = formatter.Error(ErrCodeInvalidArgs, msg, nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeInvalidArgs, msg))
	}

	loaded, err := loadRelation(opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	genOpts := gen.Options{Package: opts.Package, Source: loaded.Source}
	src, err := gen.Generate(loaded.Rel, genOpts)
	if err != nil {
		_ = formatter.Error(ErrCodeGenerateFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, ErrCodeGenerateFailed, err)
	}
	formatter.VerboseLog("Generated %d bytes for package %s", len(src), opts.Package)

	result := GenerateResult{
		Output: opts.Output,
		Source: loaded.Source,
		Facts:  len(loaded.Facts),
		Bytes:  len(src),
	}

	if opts.Check {
		return checkGenerated(formatter, loaded, genOpts, opts.Output, result)
	}

	if opts.Output == "" {
		_, err := formatter.Writer.Write(src)
		return err
	}

	if err := os.WriteFile(opts.Output, src, 0o644); err != nil {
		msg := fmt.Sprintf("writing output file: %v", err)
		_ = formatter.Error(ErrCodeWriteFailed, msg, nil)
		return WrapExitError(ExitCommandError, ErrCodeWriteFailed, err)
	}

	text := fmt.Sprintf("✓ Generated %s from %s (%d facts)", opts.Output, loaded.Source, len(loaded.Facts))
	return formatter.Success(result, text)
}

func checkGenerated(formatter *OutputFormatter, loaded *loadedRelation, genOpts gen.Options, path string, result GenerateResult) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		msg := fmt.Sprintf("reading %s: %v", path, err)
		_ = formatter.Error(ErrCodeInvalidArgs, msg, nil)
		return WrapExitError(ExitCommandError, ErrCodeInvalidArgs, err)
	}

	if err := gen.Check(loaded.Rel, genOpts, existing); err != nil {
		if errors.Is(err, gen.ErrStale) {
			msg := fmt.Sprintf("%s is out of date; run go generate", path)
			_ = formatter.Error(ErrCodeStale, msg, nil)
			return WrapExitError(ExitFailure, ErrCodeStale, err)
		}
		_ = formatter.Error(ErrCodeGenerateFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, ErrCodeGenerateFailed, err)
	}

	result.Checked = true
	return formatter.Success(result, fmt.Sprintf("✓ %s is up to date", path))
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/upcast/internal/kind"
)

// PathResult is the resolved widening chain between two kinds.
type PathResult struct {
	From kind.Kind   `json:"from" yaml:"from"`
	To   kind.Kind   `json:"to" yaml:"to"`
	Path []kind.Kind `json:"path" yaml:"path"`
}

// NewPathCommand creates the path command.
func NewPathCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Show the widening path between two kinds",
		Long: `Show the chain of direct widening facts that takes a value of
kind <from> to kind <to>. Exits with status 1 when no path exists,
which is exactly when the generated conversion fails to compile.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runPath(opts *RootOptions, fromName, toName string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	from, err := kind.Parse(fromName)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidArgs, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeInvalidArgs, err)
	}
	to, err := kind.Parse(toName)
	if err != nil {
		_ = formatter.Error(ErrCodeInvalidArgs, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeInvalidArgs, err)
	}

	loaded, err := loadRelation(opts, formatter)
	if err != nil {
		return err
	}

	path, ok := loaded.Rel.Path(from, to)
	if !ok {
		msg := fmt.Sprintf("no widening path from %s to %s", from, to)
		_ = formatter.Error(ErrCodeNoPath, msg, nil)
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodeNoPath, msg))
	}
	formatter.VerboseLog("Resolved %s to %s in %d step(s)", from, to, len(path)-1)

	return formatter.Success(PathResult{From: from, To: to, Path: path}, joinPath(path))
}

func joinPath(path []kind.Kind) string {
	names := make([]string, len(path))
	for i, k := range path {
		names[i] = k.String()
	}
	return strings.Join(names, " → ")
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/upcast/internal/kind"
)

// TableRow lists every kind a source kind widens to.
type TableRow struct {
	From    kind.Kind   `json:"from" yaml:"from"`
	Targets []kind.Kind `json:"targets" yaml:"targets"`
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "table",
		Short:         "Print the transitive widening table",
		Long:          `Print, for every numeric kind, all kinds it widens to, itself included.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(rootOpts, cmd)
		},
	}

	return cmd
}

func runTable(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	loaded, err := loadRelation(opts, formatter)
	if err != nil {
		return err
	}

	rows := make([]TableRow, 0, len(kind.All()))
	var text strings.Builder
	for i, from := range kind.All() {
		targets := loaded.Rel.Targets(from)
		rows = append(rows, TableRow{From: from, Targets: targets})

		if i > 0 {
			text.WriteByte('\n')
		}
		names := make([]string, len(targets))
		for j, k := range targets {
			names[j] = k.String()
		}
		fmt.Fprintf(&text, "%-8s %s", from.String()+":", strings.Join(names, " "))
	}

	return formatter.Success(rows, text.String())
}

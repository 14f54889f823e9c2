package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	fio "github.com/matzehuels/flowchart/pkg/io"
)

// validateCommand creates the validate command for checking definitions
// without invoking Graphviz.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check chart definitions for errors",
		Long: `Validate decodes each definition and checks element ids, edges, styles,
actions and the layout direction. It exits non-zero if any file is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args)
		},
	}
}

// runValidate reports on each file and returns an error if any is invalid.
func runValidate(w io.Writer, paths []string) error {
	failed := 0
	for _, path := range paths {
		def, err := fio.Import(path)
		if err == nil {
			err = def.Validate()
		}
		if err != nil {
			failed++
			printError(w, "%s", path)
			printDetail(w, "%v", err)
			continue
		}

		printSuccess(w, "%s", path)
		printStats(w, len(def.Elements), countEdges(def), countActions(def))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d definitions invalid", failed, len(paths))
	}
	return nil
}

func countEdges(def *fio.Definition) int {
	n := 0
	for _, e := range def.Elements {
		n += len(e.Edges)
	}
	return n
}

func countActions(def *fio.Definition) int {
	n := 0
	for _, e := range def.Elements {
		n += len(e.Actions)
	}
	return n
}

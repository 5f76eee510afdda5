// Package cmd provides the main command structure for the modmap CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/docforge/modmap/internal/cmd/output"
	"github.com/docforge/modmap/internal/report"
)

var (
	applyFlags  *mappingFlags
	applyOut    string
	applyReport string
)

// applyCmd represents the apply command.
var applyCmd = &cobra.Command{
	Use:   "apply [path]",
	Short: "Map modules into packages and write the resolved tree",
	Long: `Apply runs the module mapping over a reflection tree and persists the
result.

The tree comes either from a tree file (--tree) or from scanning a
source directory for modules. Matched modules are renamed to their
package, duplicates are merged, and packages pick up readme
descriptions. The resolved tree is written back with --out; without
--out a tree loaded from --tree is rewritten in place.`,
	Example: `  modmap apply ./src --pattern '^.*/src/([^/]+)/'
  modmap apply --tree tree.json --out mapped.json
  modmap apply ./src -p '^.*/src/([^/]+)/' --report run.md --describe`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyFlags = addMappingFlags(applyCmd)
	applyCmd.Flags().StringVar(&applyOut, "out", "",
		"Write the resolved tree to this file")
	applyCmd.Flags().StringVar(&applyReport, "report", "",
		"Write a markdown run report to this file")
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mapper, err := applyFlags.newMapper(ctx, args)
	if err != nil {
		return err
	}

	result, err := mapper.Run(ctx)
	if err != nil {
		return err
	}

	// Persist the resolved tree
	out := applyOut
	if out == "" {
		out = applyFlags.tree
	}
	if out != "" {
		if err := mapper.Save(out); err != nil {
			return err
		}
	}

	if applyReport != "" {
		if err := report.Save(applyReport, result); err != nil {
			return err
		}
	}

	return output.FormatResult(cmd.OutOrStdout(), result, globalFlags)
}

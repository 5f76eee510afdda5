package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docforge/modmap/internal/cmd/output"
)

var (
	previewFlags    *mappingFlags
	previewShowTree bool
)

// previewCmd represents the preview command.
var previewCmd = &cobra.Command{
	Use:   "preview [path]",
	Short: "Show what a mapping run would do without writing anything",
	Long: `Preview runs the module mapping over a reflection tree and prints the
outcome without persisting it.

Useful for tuning the capture pattern: the report shows which files
matched, which packages they map into, and any warnings the run would
produce.`,
	Example: `  modmap preview ./src --pattern '^.*/src/([^/]+)/'
  modmap preview --tree tree.json -p '^.*/modules/([^/]+)/' --show-tree`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewFlags = addMappingFlags(previewCmd)
	previewCmd.Flags().BoolVar(&previewShowTree, "show-tree", false,
		"Also print the top level of the resolved tree")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mapper, err := previewFlags.newMapper(ctx, args)
	if err != nil {
		return err
	}

	result, err := mapper.Run(ctx)
	if err != nil {
		return err
	}

	if err := output.FormatResult(cmd.OutOrStdout(), result, globalFlags); err != nil {
		return err
	}

	if previewShowTree {
		fmt.Fprintln(cmd.OutOrStdout())
		return output.FormatTree(cmd.OutOrStdout(), mapper.Project(), globalFlags)
	}

	return nil
}

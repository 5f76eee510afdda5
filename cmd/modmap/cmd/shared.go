package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docforge/modmap"
	"github.com/docforge/modmap/internal/describe"
	"github.com/docforge/modmap/pkg/constants"
)

// mappingFlags holds the flags shared by apply and preview.
type mappingFlags struct {
	pattern    string
	readme     string
	tree       string
	describe   bool
	model      string
	extensions []string
	skipDirs   []string
}

// addMappingFlags registers the shared mapping flags on a command.
func addMappingFlags(cmd *cobra.Command) *mappingFlags {
	flags := &mappingFlags{}

	cmd.Flags().StringVarP(&flags.pattern, "pattern", "p", "",
		"Capture pattern mapping module file paths to package names")
	cmd.Flags().StringVar(&flags.readme, "readme", constants.DefaultReadmeName,
		"Readme file name attached to packages as their description")
	cmd.Flags().StringVarP(&flags.tree, "tree", "t", "",
		"Read the reflection tree from a JSON or YAML file instead of scanning")
	cmd.Flags().BoolVar(&flags.describe, "describe", false,
		"Describe packages without readmes using the Gemini API")
	cmd.Flags().StringVar(&flags.model, "model", constants.DefaultDescribeModel,
		"Gemini model used by --describe")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil,
		"Source file extensions to scan (defaults to TypeScript and JavaScript)")
	cmd.Flags().StringSliceVar(&flags.skipDirs, "skip", nil,
		"Directory names skipped while scanning")

	return flags
}

// patternValue resolves the mapping pattern: the flag wins, then the
// config file. Config values keep their raw type so that non-string
// patterns disable mapping instead of being coerced.
func (f *mappingFlags) patternValue() any {
	if f.pattern != "" {
		return f.pattern
	}
	return viper.Get("pattern")
}

// newMapper builds a mapper from the shared flags. The tree source is
// the --tree file when given, otherwise the directory argument or the
// current directory.
func (f *mappingFlags) newMapper(ctx context.Context, args []string) (modmap.Mapper, error) {
	opts := []modmap.Option{
		modmap.WithPattern(f.patternValue()),
		modmap.WithReadmeName(f.readme),
	}

	if f.tree != "" {
		opts = append(opts, modmap.WithTreeFile(f.tree))
	} else if len(args) > 0 {
		opts = append(opts, modmap.WithRoot(args[0]))
	}

	if len(f.extensions) > 0 {
		opts = append(opts, modmap.WithExtensions(f.extensions...))
	}
	if len(f.skipDirs) > 0 {
		opts = append(opts, modmap.WithSkipDirs(f.skipDirs...))
	}

	if f.describe {
		apiKey := viper.GetString("GEMINI_API_KEY")
		if apiKey == "" {
			apiKey = viper.GetString("GOOGLE_API_KEY")
		}

		describer, err := describe.New(ctx, apiKey, describe.WithModel(f.model))
		if err != nil {
			return nil, err
		}
		opts = append(opts, modmap.WithEnhancers(describer))
	}

	return modmap.New(opts...)
}

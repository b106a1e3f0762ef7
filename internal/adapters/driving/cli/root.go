// Package cli implements the command-line driving adapter.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/glotblocks-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verboseFlag  bool
	languagePath string
	dataDir      string
)

var rootCmd = &cobra.Command{
	Use:   "glotblocks",
	Short: "Generate words for invented languages",
	Long: `GlotBlocks generates words for invented languages from weighted
concept tags. A language file defines sound classes, a concept ontology,
phonotactic constraints, and orthography rules; the generator draws
candidate words from the active concepts' sound pools, rejects anything
a constraint forbids, and spells what survives.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&languagePath, "language", "l", "language.toml",
		"path to the language definition file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"directory for the lexicon database (default ~/.glotblocks/data)")
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadLanguage reads and validates the configured language file.
func loadLanguage() (*domain.LanguageConfig, error) {
	src := file.NewSource(languagePath)
	cfg, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("loading language: %w", err)
	}
	return cfg, nil
}

// parseTags parses positional tag arguments of the form "name" or
// "name=scalar". A bare name gets scalar 1, yielding the concept's
// base weight.
func parseTags(args []string) (domain.Context, error) {
	tags := make(domain.Context, len(args))
	for _, arg := range args {
		name, scalarStr, found := strings.Cut(arg, "=")
		if name == "" {
			return nil, fmt.Errorf("tag %q: empty name: %w", arg, domain.ErrInvalidInput)
		}
		if !found {
			tags[name] = 1
			continue
		}
		scalar, err := strconv.ParseFloat(scalarStr, 64)
		if err != nil {
			return nil, fmt.Errorf("tag %q: weight is not a number: %w", arg, domain.ErrInvalidInput)
		}
		tags[name] = scalar
	}
	return tags, nil
}

// reportMissing warns about tags that matched no concept.
func reportMissing(cmd *cobra.Command, missing map[string]int) {
	for tag, n := range missing {
		cmd.PrintErrf("warning: unknown concept %q ignored (%d reference(s))\n", tag, n)
	}
}

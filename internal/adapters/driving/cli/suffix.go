package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/glotblocks-cli/internal/core/services"
)

var suffixSeed int64

var suffixCmd = &cobra.Command{
	Use:   "suffix [grammar-type]",
	Short: "Generate a grammatical suffix",
	Long: `Generates a suffix for a grammar type declared in the language's
morphology section (e.g. "plural"). The suffix is drawn from the anchor
concept's sound pools into the morpheme's shape and must pass the same
constraints as whole words.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuffix,
}

func init() {
	suffixCmd.Flags().Int64Var(&suffixSeed, "seed", 0, "random seed for reproducible output (0 means time-based)")
	rootCmd.AddCommand(suffixCmd)
}

func runSuffix(cmd *cobra.Command, args []string) error {
	cfg, err := loadLanguage()
	if err != nil {
		return err
	}

	var opts []services.Option
	if suffixSeed != 0 {
		opts = append(opts, services.WithSeed(suffixSeed))
	}

	gen, err := services.NewGenerator(cfg, opts...)
	if err != nil {
		return err
	}

	suffix, err := gen.Suffix(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Println(suffix)
	return nil
}

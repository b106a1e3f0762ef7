package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/glotblocks-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/core/services"
)

var (
	generateCount    int
	generateSeed     int64
	generateAttempts int
	generateTemplate []string
	generateJSON     bool
	generateSave     bool
	generateUnique   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [tag[=weight]...]",
	Short: "Generate words from weighted concept tags",
	Long: `Generates words whose sounds and shapes lean towards the given
concept tags. A tag names a concept from the language's ontology and may
carry a weight multiplier, e.g. "fire=2.5". Unknown tags are ignored
with a warning.

Without --template, word shapes come from the active concepts' own
shape affinities; a context whose concepts declare no shapes is an
error.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.IntVarP(&generateCount, "count", "n", 1, "number of words to generate")
	f.Int64Var(&generateSeed, "seed", 0, "random seed for reproducible output (0 means time-based)")
	f.IntVar(&generateAttempts, "attempts", 0,
		fmt.Sprintf("retry budget per word (default %d)", services.DefaultMaxAttempts))
	f.StringSliceVarP(&generateTemplate, "template", "t", nil,
		"syllable shapes overriding the concepts' own, one per syllable (e.g. -t CV,CVC)")
	f.BoolVar(&generateJSON, "json", false, "output words as JSON")
	f.BoolVar(&generateSave, "save", false, "store accepted words in the lexicon")
	f.BoolVar(&generateUnique, "unique", false, "reject words already in the lexicon")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadLanguage()
	if err != nil {
		return err
	}

	tags, err := parseTags(args)
	if err != nil {
		return err
	}

	var opts []services.Option
	if generateSeed != 0 {
		opts = append(opts, services.WithSeed(generateSeed))
	}

	if generateSave || generateUnique {
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return fmt.Errorf("opening lexicon: %w", err)
		}
		defer store.Close()
		opts = append(opts, services.WithLexicon(store))
	}

	gen, err := services.NewGenerator(cfg, opts...)
	if err != nil {
		return err
	}

	result, err := gen.Generate(cmd.Context(), domain.GenerateRequest{
		Context:  tags,
		Count:    generateCount,
		Attempts: generateAttempts,
		Template: generateTemplate,
		Unique:   generateUnique,
		Save:     generateSave,
	})
	if err != nil {
		return err
	}

	reportMissing(cmd, gen.MissingConcepts())

	if generateJSON {
		return outputWordsJSON(cmd, result)
	}
	return outputWordsText(cmd, result)
}

// wordJSON is the wire shape of one word in --json output.
type wordJSON struct {
	ID       string    `json:"id"`
	Raw      string    `json:"raw"`
	Spelled  string    `json:"spelled"`
	Attempts int       `json:"attempts"`
	Created  time.Time `json:"created_at"`
}

func outputWordsJSON(cmd *cobra.Command, result *domain.GenerateResult) error {
	words := make([]wordJSON, 0, len(result.Words))
	for _, w := range result.Words {
		words = append(words, wordJSON{
			ID:       w.ID,
			Raw:      w.Raw,
			Spelled:  w.Spelled,
			Attempts: w.Attempts,
			Created:  w.CreatedAt,
		})
	}

	data, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal words: %w", err)
	}
	cmd.Println(string(data))

	reportFailures(cmd, result)
	return nil
}

func outputWordsText(cmd *cobra.Command, result *domain.GenerateResult) error {
	for _, w := range result.Words {
		if verboseFlag {
			cmd.Printf("%s  (raw %s, %d attempt(s))\n", w.Spelled, w.Raw, w.Attempts)
		} else {
			cmd.Println(w.Spelled)
		}
	}

	reportFailures(cmd, result)

	if len(result.Words) == 0 && result.Exhausted() {
		return fmt.Errorf("no word passed the constraints: %w", domain.ErrExhausted)
	}
	return nil
}

func reportFailures(cmd *cobra.Command, result *domain.GenerateResult) {
	for _, f := range result.Failures {
		cmd.PrintErrf("warning: a word exhausted its %d attempts (%d rejection(s))\n",
			f.Attempts, len(f.Rejections))
	}
}

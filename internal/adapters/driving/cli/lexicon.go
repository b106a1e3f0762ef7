package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/glotblocks-cli/internal/adapters/driven/storage/sqlite"
)

var lexiconForce bool

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the stored lexicon",
}

var lexiconListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved words",
	RunE:  runLexiconList,
}

var lexiconClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved words",
	RunE:  runLexiconClear,
}

func init() {
	lexiconClearCmd.Flags().BoolVar(&lexiconForce, "force", false, "confirm removing every saved word")
	lexiconCmd.AddCommand(lexiconListCmd)
	lexiconCmd.AddCommand(lexiconClearCmd)
	rootCmd.AddCommand(lexiconCmd)
}

func runLexiconList(cmd *cobra.Command, _ []string) error {
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening lexicon: %w", err)
	}
	defer store.Close()

	words, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(words) == 0 {
		cmd.Println("Lexicon is empty.")
		return nil
	}

	for _, w := range words {
		cmd.Printf("%s  (raw %s, %s)\n", w.Spelled, w.Raw, w.CreatedAt.Format("2006-01-02"))
	}
	cmd.Printf("%d word(s)\n", len(words))
	return nil
}

func runLexiconClear(cmd *cobra.Command, _ []string) error {
	if !lexiconForce {
		return errors.New("refusing to clear the lexicon without --force")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening lexicon: %w", err)
	}
	defer store.Close()

	if err := store.Clear(cmd.Context()); err != nil {
		return err
	}

	cmd.Println("Lexicon cleared.")
	return nil
}

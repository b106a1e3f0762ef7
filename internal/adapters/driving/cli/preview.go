package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/core/services"
	"github.com/custodia-labs/glotblocks-cli/internal/logger"
)

var (
	previewSamples int
	previewSeed    int64
	previewWatch   bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [tag[=weight]...]",
	Short: "Preview the sound pools and sample words for a context",
	Long: `Shows the sound pools a tag context produces: each slot with its
weighted candidates, the shape distribution, and a handful of sample
words. With --watch, the language file is re-read and the preview
re-rendered every time it changes, until interrupted.`,
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.IntVarP(&previewSamples, "samples", "n", 5, "number of sample words to draw")
	f.Int64Var(&previewSeed, "seed", 0, "random seed for reproducible samples (0 means time-based)")
	f.BoolVarP(&previewWatch, "watch", "w", false, "re-render when the language file changes")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	tags, err := parseTags(args)
	if err != nil {
		return err
	}

	if err := renderPreview(cmd, tags); err != nil {
		return err
	}

	if !previewWatch {
		return nil
	}
	return watchPreview(cmd, tags)
}

// renderPreview loads the language file fresh and prints pools, shapes,
// and sample words for the tag context.
func renderPreview(cmd *cobra.Command, tags domain.Context) error {
	cfg, err := loadLanguage()
	if err != nil {
		return err
	}

	var opts []services.Option
	if previewSeed != 0 {
		opts = append(opts, services.WithSeed(previewSeed))
	}
	gen, err := services.NewGenerator(cfg, opts...)
	if err != nil {
		return err
	}

	pools := gen.BuildPools(tags)
	reportMissing(cmd, gen.MissingConcepts())

	cmd.Printf("Pools for %s:\n", languagePath)
	for _, slot := range sortedSlots(pools) {
		pool := pools.Slots[slot]
		cmd.Printf("  %s:", slot)
		for _, phoneme := range pool.Candidates() {
			cmd.Printf(" %s(%.2g)", phoneme, pool[phoneme])
		}
		cmd.Println()
	}

	if len(pools.Shapes) > 0 {
		cmd.Print("Shapes:")
		shapes := make([]string, 0, len(pools.Shapes))
		for shape := range pools.Shapes {
			shapes = append(shapes, shape)
		}
		sort.Strings(shapes)
		for _, shape := range shapes {
			cmd.Printf(" %s(%.2g)", shape, pools.Shapes[shape])
		}
		cmd.Println()
	}

	result, err := gen.Generate(cmd.Context(), domain.GenerateRequest{
		Context: tags,
		Count:   previewSamples,
	})
	if err != nil {
		// A context without shapes still has a useful pool preview.
		cmd.Printf("No samples: %v\n", err)
		return nil
	}

	cmd.Println("Samples:")
	for _, w := range result.Words {
		cmd.Printf("  %s  (raw %s)\n", w.Spelled, w.Raw)
	}
	reportFailures(cmd, result)
	return nil
}

// watchPreview re-renders the preview whenever the language file is
// rewritten, until the command's context is cancelled.
func watchPreview(cmd *cobra.Command, tags domain.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors typically
	// replace the file, which would drop a direct watch.
	dir := filepath.Dir(languagePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	base := filepath.Base(languagePath)
	cmd.Printf("Watching %s (interrupt to stop)\n", languagePath)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("language file changed (%s), re-rendering", event.Op)
			cmd.Println()
			if err := renderPreview(cmd, tags); err != nil {
				cmd.PrintErrf("warning: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// sortedSlots lists a pool set's slot names in stable order.
func sortedSlots(pools *domain.PoolSet) []string {
	slots := make([]string, 0, len(pools.Slots))
	for slot := range pools.Slots {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}

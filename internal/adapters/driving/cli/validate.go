package cli

import (
	"regexp"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the language definition file",
	Long: `Loads the language file and checks its structure: the core sections
must be present, concept weights must be non-negative numbers, and
enabled constraints must carry a pattern. Constraint patterns that fail
to compile as regular expressions are reported as warnings because the
generator skips them.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadLanguage()
	if err != nil {
		return err
	}

	enabled := 0
	for _, c := range cfg.Constraints {
		if !c.Enabled {
			continue
		}
		enabled++
		if _, err := regexp.Compile(c.Pattern); err != nil {
			name := c.Name
			if name == "" {
				name = c.Pattern
			}
			cmd.PrintErrf("warning: constraint %q does not compile and will be skipped: %v\n", name, err)
		}
	}

	for _, r := range cfg.Orthography {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			cmd.PrintErrf("warning: orthography rule %q pattern %q does not compile; applied as literal text\n",
				r.Key, r.Pattern)
		}
	}

	cmd.Printf("%s is valid\n", languagePath)
	cmd.Printf("  definitions: %d\n", len(cfg.Definitions))
	cmd.Printf("  concepts:    %d\n", len(cfg.Ontology))
	cmd.Printf("  constraints: %d (%d enabled)\n", len(cfg.Constraints), enabled)
	cmd.Printf("  orthography: %d rule(s)\n", len(cfg.Orthography))
	if len(cfg.Morphology) > 0 {
		cmd.Printf("  morphology:  %d grammar type(s)\n", len(cfg.Morphology))
	}
	return nil
}

package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ConfigSource = (*Source)(nil)

// document is the wire shape of a language file. It is decoded from
// TOML, YAML, or JSON and mapped onto the domain model.
type document struct {
	Definitions map[string][]string   `toml:"definitions" yaml:"definitions" json:"definitions"`
	Ontology    map[string]conceptDoc `toml:"ontology" yaml:"ontology" json:"ontology"`
	Constraints []constraintDoc       `toml:"constraints" yaml:"constraints" json:"constraints"`
	Orthography map[string]ruleDoc    `toml:"orthography" yaml:"orthography" json:"orthography"`
	Morphology  map[string]morphDoc   `toml:"morphology" yaml:"morphology" json:"morphology"`
}

type conceptDoc struct {
	Weight float64             `toml:"weight" yaml:"weight" json:"weight"`
	Sounds map[string][]string `toml:"sounds" yaml:"sounds" json:"sounds"`
	Shapes []string            `toml:"shapes" yaml:"shapes" json:"shapes"`
}

type constraintDoc struct {
	Name    string `toml:"name" yaml:"name" json:"name"`
	Pattern string `toml:"pattern" yaml:"pattern" json:"pattern"`
	Enabled bool   `toml:"enabled" yaml:"enabled" json:"enabled"`
}

type ruleDoc struct {
	Pattern     string `toml:"pattern" yaml:"pattern" json:"pattern"`
	Replacement string `toml:"replacement" yaml:"replacement" json:"replacement"`
}

type morphDoc struct {
	Anchor string `toml:"anchor" yaml:"anchor" json:"anchor"`
	Shape  string `toml:"shape" yaml:"shape" json:"shape"`
}

// Source loads a language configuration from a single file.
type Source struct {
	path string
}

// NewSource creates a config source reading from the given file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the configuration file path.
func (s *Source) Path() string {
	return s.path
}

// Load reads, decodes, and validates the language file. The format is
// chosen by extension: .toml decodes as TOML, .yaml/.yml/.json as YAML
// (JSON is a YAML subset). Unknown extensions default to TOML.
func (s *Source) Load() (*domain.LanguageConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading language file: %w", err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(s.path), err)
		}
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(s.path), err)
		}
	}

	cfg := doc.toConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(s.path), err)
	}

	return cfg, nil
}

// toConfig maps the wire document onto the domain model. Absent sections
// stay nil so validation can report them; present-but-empty sections
// decode to empty non-nil values and pass.
func (d *document) toConfig() *domain.LanguageConfig {
	cfg := &domain.LanguageConfig{
		Definitions: d.Definitions,
	}

	if d.Ontology != nil {
		cfg.Ontology = make(map[string]domain.Concept, len(d.Ontology))
		for name, c := range d.Ontology {
			cfg.Ontology[name] = domain.Concept{
				Weight:    c.Weight,
				AddSounds: c.Sounds,
				AddShapes: c.Shapes,
			}
		}
	}

	if d.Constraints != nil {
		cfg.Constraints = make([]domain.Constraint, 0, len(d.Constraints))
		for _, c := range d.Constraints {
			cfg.Constraints = append(cfg.Constraints, domain.Constraint{
				Name:    c.Name,
				Pattern: c.Pattern,
				Enabled: c.Enabled,
			})
		}
	}

	if d.Orthography != nil {
		cfg.Orthography = make([]domain.OrthographyRule, 0, len(d.Orthography))
		for key, r := range d.Orthography {
			cfg.Orthography = append(cfg.Orthography, domain.OrthographyRule{
				Key:         key,
				Pattern:     r.Pattern,
				Replacement: r.Replacement,
			})
		}
		domain.SortOrthography(cfg.Orthography)
	}

	if d.Morphology != nil {
		cfg.Morphology = make(map[string]domain.Morpheme, len(d.Morphology))
		for grammarType, m := range d.Morphology {
			cfg.Morphology[grammarType] = domain.Morpheme{
				Anchor: m.Anchor,
				Shape:  m.Shape,
			}
		}
	}

	return cfg
}

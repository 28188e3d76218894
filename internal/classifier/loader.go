package classifier

import (
	"fmt"
	"os"

	"github.com/kycflow/docpack/pkg/models"
	"gopkg.in/yaml.v3"
)

// Loader loads classification rules from a YAML file
type Loader struct {
	rulesPath string
}

// NewLoader creates a new rules loader
func NewLoader(rulesPath string) *Loader {
	return &Loader{
		rulesPath: rulesPath,
	}
}

// RuleFile represents a YAML classification rules file
type RuleFile struct {
	Rules []*RuleEntry `yaml:"rules"`
}

// RuleEntry is a single extension mapping in a rules file
type RuleEntry struct {
	Extension string `yaml:"extension"`
	Category  string `yaml:"category"`
	Label     string `yaml:"label"`
}

// Load returns the built-in ruleset extended with the entries from the rules
// file. A missing file yields the built-in ruleset; classification stays
// total either way.
func (l *Loader) Load() (*Ruleset, error) {
	rs := NewRuleset()

	if l.rulesPath == "" {
		return rs, nil
	}
	if _, err := os.Stat(l.rulesPath); os.IsNotExist(err) {
		return rs, nil
	}

	data, err := os.ReadFile(l.rulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var file RuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", l.rulesPath, err)
	}

	for _, entry := range file.Rules {
		if err := rs.addRule(entry); err != nil {
			return nil, fmt.Errorf("invalid rule in %s: %w", l.rulesPath, err)
		}
	}

	return rs, nil
}

// addRule validates and installs a rule, overriding any built-in entry for
// the same extension
func (rs *Ruleset) addRule(entry *RuleEntry) error {
	if entry.Extension == "" {
		return fmt.Errorf("rule has empty extension")
	}
	ext := entry.Extension
	if ext[0] != '.' {
		ext = "." + ext
	}

	var category models.Category
	switch entry.Category {
	case "document":
		category = models.CategoryDocument
	case "image":
		category = models.CategoryImage
	case "other", "":
		category = models.CategoryOther
	default:
		return fmt.Errorf("unknown category %q for extension %s", entry.Category, ext)
	}

	label := entry.Label
	if label == "" {
		label = UnknownFileType
	}

	rs.rules[ext] = Rule{Category: category, Label: label}
	return nil
}

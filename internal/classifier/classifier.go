package classifier

import (
	"path/filepath"
	"strings"

	"github.com/kycflow/docpack/pkg/models"
)

// UnknownFileType is the label for extensions outside the ruleset
const UnknownFileType = "Unknown File Type"

// Rule maps a file extension to a category and a human-readable label
type Rule struct {
	Category models.Category
	Label    string
}

// Ruleset is the extension classification table. Lookups are total:
// unrecognized extensions resolve to CategoryOther / UnknownFileType,
// never an error, so classification can never block the pipeline.
type Ruleset struct {
	rules map[string]Rule
}

// builtinRules is the default extension table
var builtinRules = map[string]Rule{
	".pdf":  {models.CategoryDocument, "PDF Document"},
	".txt":  {models.CategoryDocument, "Text File"},
	".doc":  {models.CategoryDocument, "Word Document"},
	".docx": {models.CategoryDocument, "Word Document"},
	".xls":  {models.CategoryDocument, "Excel Spreadsheet"},
	".xlsx": {models.CategoryDocument, "Excel Spreadsheet"},
	".ppt":  {models.CategoryDocument, "PowerPoint Presentation"},
	".pptx": {models.CategoryDocument, "PowerPoint Presentation"},
	".jpg":  {models.CategoryImage, "Image"},
	".jpeg": {models.CategoryImage, "Image"},
	".png":  {models.CategoryImage, "Image"},
	".gif":  {models.CategoryImage, "Image"},
	".bmp":  {models.CategoryImage, "Image"},
	".tiff": {models.CategoryImage, "Image"},
}

// NewRuleset returns a ruleset containing the built-in extension table
func NewRuleset() *Ruleset {
	rules := make(map[string]Rule, len(builtinRules))
	for ext, rule := range builtinRules {
		rules[ext] = rule
	}
	return &Ruleset{rules: rules}
}

// Classify maps a path to its category and file-type label. Only the
// extension is consulted; no filesystem access happens here.
func (rs *Ruleset) Classify(path string) (models.Category, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if rule, ok := rs.rules[ext]; ok {
		return rule.Category, rule.Label
	}
	return models.CategoryOther, UnknownFileType
}

// Classify classifies a path against the built-in table
func Classify(path string) (models.Category, string) {
	return NewRuleset().Classify(path)
}

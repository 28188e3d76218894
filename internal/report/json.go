package report

import (
	"encoding/json"
	"os"

	"github.com/kycflow/docpack/pkg/models"
)

// generateJSON writes the result package in its canonical JSON layout
func (g *Generator) generateJSON(pkg *models.ResultPackage, outputFile string) error {
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(outputFile, data, 0644)
}

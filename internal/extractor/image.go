package extractor

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/kycflow/docpack/pkg/models"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ImageExtractor probes image headers for dimensions, format, color mode
// and transparency. The probe is best-effort: a failure yields an error on
// the record but never blocks metadata collection.
type ImageExtractor struct {
	*BaseExtractor
}

// NewImageExtractor creates a new image metadata extractor
func NewImageExtractor() *ImageExtractor {
	return &ImageExtractor{
		BaseExtractor: NewBaseExtractor("image", []string{
			".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff",
		}),
	}
}

// Extract decodes the image header only; pixel data is never loaded
func (e *ImageExtractor) Extract(ctx context.Context, path string) (*models.ContentAnalysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("could not read image metadata: %w", err)
	}

	return &models.ContentAnalysis{
		Image: &models.ImageMetadata{
			Width:           cfg.Width,
			Height:          cfg.Height,
			Format:          format,
			ColorMode:       colorModeName(cfg.ColorModel),
			HasTransparency: hasAlpha(cfg.ColorModel),
		},
	}, nil
}

// colorModeName maps a color model to a human-readable mode label
func colorModeName(m color.Model) string {
	switch m {
	case color.RGBAModel, color.RGBA64Model:
		return "RGBA"
	case color.NRGBAModel, color.NRGBA64Model:
		return "NRGBA"
	case color.GrayModel, color.Gray16Model:
		return "Grayscale"
	case color.AlphaModel, color.Alpha16Model:
		return "Alpha"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "YCbCrA"
	case color.CMYKModel:
		return "CMYK"
	}
	if _, ok := m.(color.Palette); ok {
		return "Palette"
	}
	return "Unknown"
}

// hasAlpha reports whether the color model can carry transparency
func hasAlpha(m color.Model) bool {
	switch m {
	case color.RGBAModel, color.RGBA64Model,
		color.NRGBAModel, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model,
		color.NYCbCrAModel:
		return true
	}
	if palette, ok := m.(color.Palette); ok {
		for _, entry := range palette {
			if _, _, _, a := entry.RGBA(); a < 0xffff {
				return true
			}
		}
	}
	return false
}

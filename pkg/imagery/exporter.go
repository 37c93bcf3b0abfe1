package imagery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/menta2k/document-recognizer/internal/utils"
	"github.com/menta2k/document-recognizer/pkg/types"
)

// ImageProvider is implemented by results that carry images
type ImageProvider interface {
	Images() map[string]types.Image
}

// ExportConfig holds configuration for writing result images
type ExportConfig struct {
	Format       string
	Quality      int
	Lossless     bool
	MaxDimension int
	Prefix       string
}

// Exporter writes result images to disk
type Exporter struct {
	config ExportConfig
}

// NewExporter creates an Exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: ExportConfig{
			Format:  "jpg",
			Quality: 90,
		},
	}
}

// NewExporterWithConfig creates an Exporter with custom configuration
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{config: config}
}

// Export writes every image present in the result to dir. Files are named
// <config prefix><name>_<field>.<format>. Absent images are skipped. The
// written paths are returned in field order.
func (e *Exporter) Export(result ImageProvider, dir, name string) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	images := result.Images()

	fields := make([]string, 0, len(images))
	for field := range images {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	format := strings.ToLower(e.config.Format)
	if format == "" {
		format = "jpg"
	}

	var paths []string

	for _, field := range fields {
		encoded := images[field]
		if encoded.Empty() {
			continue
		}

		img, err := Decode(encoded)
		if err != nil {
			return paths, fmt.Errorf("failed to decode %s: %w", field, err)
		}

		img = Fit(img, e.config.MaxDimension)

		path := utils.GenerateOutputFilename(
			utils.SanitizeFilename(fmt.Sprintf("%s_%s", name, field)),
			dir,
			utils.SanitizeFilename(e.config.Prefix),
			"",
			format,
		)

		if err := SaveImage(img, path, format, e.config.Quality, e.config.Lossless); err != nil {
			return paths, fmt.Errorf("failed to save %s: %w", field, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}

// Package export writes diagrams to external formats: JSON for
// persistence round-trips, SVG for documents, and PNG for quick sharing.
package export

import (
	"fmt"

	"areal/diagram"
)

// Format represents an export format.
type Format string

const (
	// FormatJSON exports the diagram's data records for later reload.
	FormatJSON Format = "json"
	// FormatSVG exports rendered geometry as scalable vector markup.
	FormatSVG Format = "svg"
	// FormatPNG exports rendered geometry as a raster image.
	FormatPNG Format = "png"
)

// Exporter interface for different export formats.
type Exporter interface {
	// Export converts a diagram to the target format.
	Export(d *diagram.Diagram) ([]byte, error)
	// GetFileExtension returns the recommended file extension for this format.
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format.
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatSVG:
		return NewSVGExporter(), nil
	case FormatPNG:
		return NewPNGExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats.
func GetAvailableFormats() []Format {
	return []Format{FormatJSON, FormatSVG, FormatPNG}
}

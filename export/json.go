package export

import (
	"encoding/json"

	"areal/diagram"
)

// JSONExporter exports diagrams to the persistence JSON format.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a diagram to indented JSON.
func (e *JSONExporter) Export(d *diagram.Diagram) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// GetFileExtension returns the file extension for JSON.
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name.
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}

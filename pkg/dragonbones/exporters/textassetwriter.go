// Package exporters writes evaluated poses to interchange formats.
package exporters

import (
	"os"
	"path/filepath"
	"strings"
)

// ExportHeaderTitle is the header title for exported text files.
const ExportHeaderTitle = "# dragonbones-go - "

// TextAssetWriter provides a base for text-based pose export.
type TextAssetWriter struct {
	export strings.Builder
}

// WriteAssetToFile writes the export content to a file.
func (w *TextAssetWriter) WriteAssetToFile(fileName string) error {
	if w.export.Len() == 0 {
		return nil
	}

	dir := filepath.Dir(fileName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fileName, []byte(w.export.String()), 0644)
}

// ClearExportData clears the export buffer.
func (w *TextAssetWriter) ClearExportData() {
	w.export.Reset()
}

// GetExportByteCount returns the length of the export content.
func (w *TextAssetWriter) GetExportByteCount() int {
	return w.export.Len()
}

// GetExport returns the accumulated export content.
func (w *TextAssetWriter) GetExport() string {
	return w.export.String()
}

// AppendString appends a string to the export.
func (w *TextAssetWriter) AppendString(s string) {
	w.export.WriteString(s)
}

// AppendLine appends a string followed by a newline to the export.
func (w *TextAssetWriter) AppendLine(s string) {
	w.export.WriteString(s)
	w.export.WriteString("\n")
}

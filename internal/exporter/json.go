// Package exporter writes the pipeline's JSON artifacts: the
// components-by-identifier file and the name-to-identifier mapping file.
// Output is pretty-printed with two-space indentation and HTML escaping
// disabled so non-ASCII site names stay literal.
package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// JSONWriter provides JSON artifact export functionality
type JSONWriter struct {
	logger *slog.Logger
}

// NewJSONWriter creates a new JSON writer instance
func NewJSONWriter(logger *slog.Logger) *JSONWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONWriter{logger: logger}
}

// Write serializes v to filePath, creating the parent directory if needed.
// It returns the number of bytes written so callers can report file sizes.
func (w *JSONWriter) Write(filePath string, v any) (int64, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", filePath, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", filePath, err)
	}

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", filePath, err)
	}

	w.logger.Info("Wrote JSON artifact",
		slog.String("path", filePath),
		slog.Int64("bytes", info.Size()))

	return info.Size(), nil
}

// Package store persists segmentation artifacts: one JSON file per
// chunk plus the validation report, either to a local directory or to
// a remote artifact store over HTTP.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/webseg/internal/segment"
)

// Dir writes artifacts under a local output directory.
type Dir struct {
	Path string
}

// WriteChunks writes each chunk to <dir>/<name>.json.
func (d Dir) WriteChunks(chunks []segment.Chunk) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, c := range chunks {
		if err := d.writeJSON(c.Name+".json", c); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport writes the validation report to <dir>/_validation.json.
func (d Dir) WriteReport(rep segment.Report) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return d.writeJSON("_validation.json", rep)
}

// WriteSummary writes the Markdown and HTML report renderings.
func (d Dir) WriteSummary(md, html string) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(d.Path, "summary.md"), []byte(md), 0o644); err != nil {
		return fmt.Errorf("write summary.md: %w", err)
	}
	if html != "" {
		if err := os.WriteFile(filepath.Join(d.Path, "summary.html"), []byte(html), 0o644); err != nil {
			return fmt.Errorf("write summary.html: %w", err)
		}
	}
	return nil
}

func (d Dir) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(d.Path, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a report file holds no YAML document.
var ErrEmpty = errors.New("empty report file")

// Decode reads a report from r. Unknown keys are rejected so that typos in
// hand-edited files are reported instead of silently dropped.
func Decode(r io.Reader) (ReportData, error) {
	var d ReportData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return ReportData{}, ErrEmpty
		}
		return ReportData{}, fmt.Errorf("parsing report: %w", err)
	}
	return d, nil
}

// Encode writes d to w as YAML.
func Encode(w io.Writer, d ReportData) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

// Load reads a report from a YAML file.
func Load(path string) (ReportData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReportData{}, fmt.Errorf("reading report: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Save writes d to path, creating parent directories as needed.
func Save(d ReportData, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, d); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

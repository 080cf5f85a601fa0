// Package home manages the gloss home directory layout.
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the gloss home directory.
	DefaultDirName = ".gloss"

	// PDFDirName is the subdirectory for downloaded and local source PDFs.
	PDFDirName = "pdfs"

	// GlossaryDirName is the subdirectory for extracted glossary text files.
	GlossaryDirName = "glossaries"

	// DatasetDirName is the subdirectory for generated training datasets.
	DatasetDirName = "datasets"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"

	// CombinedGlossaryName is the file the combine step writes.
	CombinedGlossaryName = "combined_glossary.txt"
)

// Dir represents the gloss home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.gloss).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// PDFPath returns the path to the source PDF cache directory.
func (d *Dir) PDFPath() string {
	return filepath.Join(d.path, PDFDirName)
}

// GlossaryPath returns the path to the glossary output directory.
func (d *Dir) GlossaryPath() string {
	return filepath.Join(d.path, GlossaryDirName)
}

// DatasetPath returns the path to the dataset output directory.
func (d *Dir) DatasetPath() string {
	return filepath.Join(d.path, DatasetDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// CombinedGlossaryPath returns the path the combine step writes to.
func (d *Dir) CombinedGlossaryPath() string {
	return filepath.Join(d.GlossaryPath(), CombinedGlossaryName)
}

// GlossaryFile returns the glossary output path for a source PDF: the
// same basename with a .txt extension, under the glossaries directory.
func (d *Dir) GlossaryFile(pdfPath string) string {
	base := filepath.Base(pdfPath)
	ext := filepath.Ext(base)
	return filepath.Join(d.GlossaryPath(), base[:len(base)-len(ext)]+".txt")
}

// DatasetFile returns the path for a named dataset file.
func (d *Dir) DatasetFile(name string) string {
	return filepath.Join(d.DatasetPath(), name)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	for _, p := range []string{d.PDFPath(), d.GlossaryPath(), d.DatasetPath()} {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", p, err)
		}
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}

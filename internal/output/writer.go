package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer saves generated reports under a target directory.
type Writer struct {
	Dir string
}

// NewWriter creates a Writer, creating the directory if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{Dir: dir}, nil
}

// SaveLevelsReport writes the level report for a symbol and returns the path.
func (w *Writer) SaveLevelsReport(symbol string, at time.Time, text string) (string, error) {
	return w.save(fmt.Sprintf("%s_levels_%s.txt", symbol, at.Format("2006-01-02")), text)
}

// SaveSwingReport writes the swing point report for a symbol and returns the
// path.
func (w *Writer) SaveSwingReport(symbol string, at time.Time, text string) (string, error) {
	return w.save(fmt.Sprintf("%s_swings_%s.txt", symbol, at.Format("2006-01-02")), text)
}

func (w *Writer) save(name, text string) (string, error) {
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

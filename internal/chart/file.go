package chart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSVGPath is where charts are saved when no path is given.
const DefaultSVGPath = "gantt.svg"

// SaveSVG renders the layout and writes it to path, creating parent
// directories as needed. It returns the number of bytes written.
func SaveSVG(path string, l Layout, opts SVGOptions) (int64, error) {
	if path == "" {
		path = DefaultSVGPath
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, l, opts); err != nil {
		return 0, fmt.Errorf("failed to render chart: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("failed to write chart: %w", err)
	}

	return int64(buf.Len()), nil
}

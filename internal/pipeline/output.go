package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FixedSuffix is appended to the input's stem for the output file name.
const FixedSuffix = ".fixed.md"

// OutputPath returns where the repaired form of sourceName is written
// inside outDir.
func OutputPath(outDir, sourceName string) string {
	base := filepath.Base(sourceName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+FixedSuffix)
}

// WriteFixed writes the repaired document to the output directory, creating
// it if needed. The output file is fully overwritten on each run.
func WriteFixed(outDir, sourceName, text string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := OutputPath(outDir, sourceName)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return path, nil
}

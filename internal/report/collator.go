package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const pageTemplate = `<html><body><h1>NETS Test Report</h1><pre>%s</pre></body></html>`

// Collate reads every *.json file in dir and merges them into a single
// document keyed by filename stem.
func Collate(dir string) (map[string]json.RawMessage, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list result files: %w", err)
	}
	sort.Strings(paths)

	merged := make(map[string]json.RawMessage, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read result file '%s': %w", path, err)
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("result file '%s' is not valid JSON", path)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".json")
		merged[stem] = json.RawMessage(data)
	}

	return merged, nil
}

// Render produces the static report page embedding the merged results as
// preformatted text.
func Render(merged map[string]json.RawMessage) ([]byte, error) {
	content, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged results: %w", err)
	}
	return []byte(fmt.Sprintf(pageTemplate, content)), nil
}

// WriteReport collates dir and writes the rendered page to outPath.
func WriteReport(dir, outPath string) error {
	merged, err := Collate(dir)
	if err != nil {
		return err
	}
	page, err := Render(merged)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, page, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Output mode recorded in a run summary.
const (
	ModeCapture = "capture"
	ModeLive    = "live"
)

// RunResult is the per-run summary dropped into the shared results
// directory for the collator to pick up.
type RunResult struct {
	Scenario  string `json:"scenario"`
	Packets   int    `json:"packets"`
	Mode      string `json:"mode"`
	Capture   string `json:"capture,omitempty"`
	Interface string `json:"interface,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewRunResult stamps a summary for a completed traffic run.
func NewRunResult(scenarioName string, packets int, iface, capturePath string) RunResult {
	res := RunResult{
		Scenario:  scenarioName,
		Packets:   packets,
		Mode:      ModeLive,
		Interface: iface,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if capturePath != "" {
		res.Mode = ModeCapture
		res.Capture = capturePath
		res.Interface = ""
	}
	return res
}

// WriteResult writes the summary into dir as <scenario>-<unixnano>.json,
// creating the directory if needed, and returns the written path.
func WriteResult(dir string, res RunResult) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%d.json", res.Scenario, time.Now().UnixNano()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create result file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return "", fmt.Errorf("failed to encode result to json: %w", err)
	}

	return path, nil
}

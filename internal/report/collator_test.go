package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteResult_ProducesParseableSummary(t *testing.T) {
	dir := t.TempDir()

	res := NewRunResult("dns-nx-spike", 100, "", "out.pcap")
	path, err := WriteResult(dir, res)
	if err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read result file: %v", err)
	}
	var decoded RunResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Result file is not valid JSON: %v", err)
	}
	if decoded.Scenario != "dns-nx-spike" || decoded.Packets != 100 {
		t.Errorf("Decoded result does not match: %+v", decoded)
	}
	if decoded.Mode != ModeCapture || decoded.Capture != "out.pcap" {
		t.Errorf("Expected capture mode with path recorded, got %+v", decoded)
	}
}

func TestNewRunResult_LiveMode(t *testing.T) {
	res := NewRunResult("arp-spoof", 1, "eth0", "")
	if res.Mode != ModeLive {
		t.Errorf("Expected live mode, got %s", res.Mode)
	}
	if res.Interface != "eth0" || res.Capture != "" {
		t.Errorf("Unexpected live result: %+v", res)
	}
}

func TestCollate_MergesByStem(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"smoke.json":  `{"passed": true}`,
		"bursts.json": `{"count": 2}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	// Non-JSON files must be ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write notes.txt: %v", err)
	}

	merged, err := Collate(dir)
	if err != nil {
		t.Fatalf("Collate failed: %v", err)
	}
	if len(merged) != 2 {
		t.Fatalf("Expected 2 merged entries, got %d", len(merged))
	}
	for _, stem := range []string{"smoke", "bursts"} {
		if _, ok := merged[stem]; !ok {
			t.Errorf("Missing entry for stem %q", stem)
		}
	}
}

func TestCollate_RejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0644); err != nil {
		t.Fatalf("Failed to write bad.json: %v", err)
	}
	if _, err := Collate(dir); err == nil {
		t.Errorf("Expected error for invalid result JSON")
	}
}

func TestRender_EmbedsMergedResults(t *testing.T) {
	merged := map[string]json.RawMessage{
		"smoke": json.RawMessage(`{"passed": true}`),
	}
	page, err := Render(merged)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	html := string(page)
	if !strings.Contains(html, "NETS Test Report") {
		t.Errorf("Report title missing from page")
	}
	if !strings.Contains(html, "<pre>") {
		t.Errorf("Results are not embedded as preformatted text")
	}
	if !strings.Contains(html, `"smoke"`) || !strings.Contains(html, `"passed"`) {
		t.Errorf("Merged results missing from page")
	}
}

func TestWriteReport_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteResult(dir, NewRunResult("smb-burst", 2, "lo", "")); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}

	out := filepath.Join(dir, "report.html")
	if err := WriteReport(dir, out); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Report was not written: %v", err)
	}
	if !strings.Contains(string(data), "smb-burst") {
		t.Errorf("Report does not mention the collated run")
	}
}

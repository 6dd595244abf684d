package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

func sampleSummary() Summary {
	var s Summary
	s.add(ItemResult{Type: brand.TypeCopy, Output: "LICENSE", Status: StatusSucceeded, Duration: 3 * time.Millisecond})
	s.add(ItemResult{Type: brand.TypeIcns, Output: "mac/app.icns", Status: StatusSkipped, Reason: "required tool not available: iconutil"})
	s.add(ItemResult{Type: brand.TypeRaster, Output: "img/a.png", Status: StatusFailed, Err: errors.New("decode | boom")})
	s.Duration = 1500 * time.Millisecond
	return s
}

func TestRenderReport(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	out, err := RenderReport(sampleSummary(), at)
	if err != nil {
		t.Fatalf("RenderReport: %v", err)
	}
	for _, want := range []string{
		"# brandgen run report",
		"Generated 2026-03-04 05:06:07 UTC in 1.5s.",
		"| Succeeded | 1 |",
		"| Failed | 1 |",
		"| copy | `LICENSE` | SUCCEEDED | 3ms | - |",
		"| icns | `mac/app.icns` | SKIPPED | 0s | required tool not available: iconutil |",
		`decode \| boom`,
		"- icns: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestSummaryErr(t *testing.T) {
	if err := (Summary{Succeeded: 2, Skipped: 1}).Err(); err != nil {
		t.Fatalf("no failures should be nil, got %v", err)
	}
	err := sampleSummary().Err()
	if !errors.Is(err, brand.ErrRunFailed) || !strings.Contains(err.Error(), "1 transformation(s) failed") {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildManifest(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{OutputDir: dir}
	if err := os.WriteFile(filepath.Join(dir, "LICENSE"), []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := BuildManifest(sampleSummary(), paths, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}
	if m.Version != ManifestVersion || m.GeneratedAt != "2026-01-02T03:04:05Z" || len(m.Outputs) != 3 {
		t.Fatalf("manifest = %+v", m)
	}
	license := m.Outputs[0]
	if license.Size != 3 || license.SHA256 != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Fatalf("license entry = %+v", license)
	}
	if m.Outputs[1].SHA256 != "" || m.Outputs[2].Error == "" {
		t.Fatalf("entries = %+v", m.Outputs)
	}

	path := filepath.Join(dir, "reports", "manifest.yaml")
	if err := WriteManifest(path, m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Manifest
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Outputs[0].SHA256 != license.SHA256 || decoded.Failed != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
}

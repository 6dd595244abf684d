// Where: internal/generator/manifest.go
// What: YAML manifest of the outputs a run produced.
// Why: Let packaging steps verify generated assets by size and checksum.
package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/poruru-code/brandgen/internal/infra/fileops"
)

// ManifestVersion is bumped when the manifest shape changes.
const ManifestVersion = 1

// Manifest lists every item of a run.
type Manifest struct {
	Version     int             `yaml:"version"`
	GeneratedAt string          `yaml:"generated_at"`
	OutputDir   string          `yaml:"output_dir"`
	Succeeded   int             `yaml:"succeeded"`
	Skipped     int             `yaml:"skipped"`
	Failed      int             `yaml:"failed"`
	Outputs     []ManifestEntry `yaml:"outputs"`
}

// ManifestEntry describes one output. Size and SHA256 are set only for
// outputs that were written as regular files.
type ManifestEntry struct {
	Path   string `yaml:"path"`
	Type   string `yaml:"type"`
	Status string `yaml:"status"`
	Size   int64  `yaml:"size,omitempty"`
	SHA256 string `yaml:"sha256,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// BuildManifest describes summary, hashing every succeeded file output.
func BuildManifest(summary Summary, paths Paths, generatedAt time.Time) (Manifest, error) {
	m := Manifest{
		Version:     ManifestVersion,
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		OutputDir:   paths.OutputDir,
		Succeeded:   summary.Succeeded,
		Skipped:     summary.Skipped,
		Failed:      summary.Failed,
		Outputs:     make([]ManifestEntry, 0, len(summary.Items)),
	}
	for _, item := range summary.Items {
		entry := ManifestEntry{Path: item.Output, Type: string(item.Type), Status: string(item.Status)}
		if item.Err != nil {
			entry.Error = item.Err.Error()
		}
		if item.Status == StatusSucceeded {
			full := paths.Output(item.Output)
			if fileops.FileExists(full) {
				size, sum, err := hashFile(full)
				if err != nil {
					return Manifest{}, err
				}
				entry.Size = size
				entry.SHA256 = sum
			}
		}
		m.Outputs = append(m.Outputs, entry)
	}
	return m, nil
}

func hashFile(path string) (int64, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", fmt.Errorf("hash %s: %w", path, err)
	}
	defer f.Close()
	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, "", fmt.Errorf("hash %s: %w", path, err)
	}
	return n, hex.EncodeToString(h.Sum(nil)), nil
}

// WriteManifest encodes m as YAML at path.
func WriteManifest(path string, m Manifest) error {
	payload, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := fileops.WriteFile(path, payload); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Where: internal/infra/staging/staging.go
// What: Throwaway staging directories for external tool invocations.
// Why: Give every tool run a fresh, uniquely named workspace that is always cleaned up.
package staging

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/poruru-code/brandgen/internal/constants"
	"github.com/poruru-code/brandgen/internal/infra/envutil"
	"github.com/poruru-code/brandgen/internal/infra/fileops"
	"github.com/poruru-code/brandgen/internal/meta"
)

// Dir is an acquired staging directory.
type Dir struct {
	Path string
}

// Acquire creates an empty directory named `<slug>-<label>-<uuid>` under the
// staging root.
func Acquire(label string) (*Dir, error) {
	root, err := RootDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(root, fmt.Sprintf("%s%s-%s", meta.StagingPrefix, label, uuid.NewString()))
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	log.Debug("Acquired staging dir", "path", path)
	return &Dir{Path: path}, nil
}

// Join returns a path inside the staging directory.
func (d *Dir) Join(elem ...string) string {
	return filepath.Join(append([]string{d.Path}, elem...)...)
}

// Mkdir creates a subdirectory and returns its path.
func (d *Dir) Mkdir(elem ...string) (string, error) {
	path := d.Join(elem...)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create staging subdir: %w", err)
	}
	return path, nil
}

// Release removes the directory. Failures are logged and otherwise ignored.
func (d *Dir) Release() {
	if d == nil || d.Path == "" {
		return
	}
	if err := fileops.RemoveDir(d.Path); err != nil {
		log.Warn("Failed to remove staging dir", "path", d.Path, "error", err)
		return
	}
	log.Debug("Released staging dir", "path", d.Path)
}

// RootDir returns the staging root. BRANDGEN_STAGING_DIR overrides the system
// temp directory.
func RootDir() (string, error) {
	if override := envutil.GetHostEnv(constants.HostSuffixStagingDir); override != "" {
		root, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolve staging dir: %w", err)
		}
		if err := os.MkdirAll(root, 0o755); err != nil {
			return "", fmt.Errorf("staging root not writable: %s: %w", root, err)
		}
		return root, nil
	}
	return os.TempDir(), nil
}

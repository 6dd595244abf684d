package iconset

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/poruru-code/brandgen/internal/artwork"
	"github.com/poruru-code/brandgen/internal/infra/staging"
)

// fakeTools stands in for the platform tools. Each method records its call
// and writes the artifact the real tool would produce.
type fakeTools struct {
	calls []string

	iconsetFiles []string
	catalogFiles []string
	stagedFiles  []string
	createArgs   []string
	createDir    string

	mountPoint   string
	skipArtifact bool
	unhideErr    error
	unmountErr   error
	failOn       map[string]error
}

func (f *fakeTools) record(name string) error {
	f.calls = append(f.calls, name)
	return f.failOn[name]
}

func (f *fakeTools) Iconutil(_ context.Context, iconset, output string) error {
	if err := f.record("iconutil"); err != nil {
		return err
	}
	f.iconsetFiles = listFiles(iconset)
	return os.WriteFile(output, []byte("icns"), 0o644)
}

func (f *fakeTools) Actool(_ context.Context, xcassets, icon, outDir string) error {
	if err := f.record("actool"); err != nil {
		return err
	}
	f.catalogFiles = listFiles(filepath.Dir(xcassets))
	if _, err := os.Stat(icon); err != nil {
		return err
	}
	if f.skipArtifact {
		return nil
	}
	return os.WriteFile(filepath.Join(outDir, "Assets.car"), []byte("car"), 0o644)
}

func (f *fakeTools) SetDPI(_ context.Context, image string, dpi int) error {
	return f.record(fmt.Sprintf("sips %s %d", filepath.Base(image), dpi))
}

func (f *fakeTools) Mount(_ context.Context, dmg string) (string, error) {
	if err := f.record("mount " + filepath.Base(dmg)); err != nil {
		return "", err
	}
	return f.mountPoint, nil
}

func (f *fakeTools) Unmount(_ context.Context, mountPoint string) error {
	f.calls = append(f.calls, "unmount")
	return f.unmountErr
}

func (f *fakeTools) Unhide(_ context.Context, path string) error {
	f.calls = append(f.calls, "chflags")
	return f.unhideErr
}

func (f *fakeTools) CreateDMG(_ context.Context, dir, script string, args []string) error {
	if err := f.record("create-dmg"); err != nil {
		return err
	}
	f.createDir = dir
	f.createArgs = args
	f.stagedFiles = listFiles(dir)
	return os.WriteFile(filepath.Join(dir, args[len(args)-2]), []byte("dmg"), 0o644)
}

// listFiles returns slash-separated paths of every file under root.
func listFiles(root string) []string {
	var files []string
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(files)
	return files
}

func testAcquire(t *testing.T) func(string) (*staging.Dir, error) {
	t.Helper()
	root := t.TempDir()
	n := 0
	return func(label string) (*staging.Dir, error) {
		n++
		path := filepath.Join(root, fmt.Sprintf("%s-%d", label, n))
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, err
		}
		return &staging.Dir{Path: path}, nil
	}
}

func solidSource(w, h int) *artwork.Source {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 10, A: 255})
		}
	}
	return artwork.NewRaster("master.png", img)
}

func hasAll(got []string, want ...string) string {
	set := map[string]bool{}
	for _, g := range got {
		set[g] = true
	}
	var missing []string
	for _, w := range want {
		if !set[w] {
			missing = append(missing, w)
		}
	}
	return strings.Join(missing, ", ")
}

// Where: internal/iconset/render.go
// What: Square renditions and iconset file naming.
// Why: Every container mode renders the same master at a list of (size, scale) pairs.
package iconset

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/poruru-code/brandgen/internal/artwork"
	"github.com/poruru-code/brandgen/internal/domain/brand"
)

// Entry is one rendition: a point size at a pixel scale.
type Entry struct {
	Size  int
	Scale int
}

// Pixels is the rendered edge length.
func (e Entry) Pixels() int {
	return e.Size * e.Scale
}

// FileName follows the iconset convention `icon_{s}x{s}[@{k}x].png`.
func (e Entry) FileName() string {
	if e.Scale <= 1 {
		return fmt.Sprintf("icon_%dx%d.png", e.Size, e.Size)
	}
	return fmt.Sprintf("icon_%dx%d@%dx.png", e.Size, e.Size, e.Scale)
}

func validateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: at least one icon size is required", brand.ErrConfig)
	}
	for _, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("%w: icon size %d must be positive", brand.ErrConfig, size)
		}
	}
	return nil
}

// renderSquare renders src at size x size using Contain with no padding.
func renderSquare(src *artwork.Source, size int) (*image.NRGBA, error) {
	return artwork.Square(src, size)
}

// writeEntries renders every entry into dir and returns the written file names.
func writeEntries(src *artwork.Source, dir string, entries []Entry) ([]string, error) {
	cache := map[int]*image.NRGBA{}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		img, ok := cache[entry.Pixels()]
		if !ok {
			rendered, err := renderSquare(src, entry.Pixels())
			if err != nil {
				return nil, err
			}
			cache[entry.Pixels()] = rendered
			img = rendered
		}
		name := entry.FileName()
		if err := artwork.SavePNG(img, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

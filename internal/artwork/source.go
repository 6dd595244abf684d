// Where: internal/artwork/source.go
// What: Master artwork loading for vector and raster inputs.
// Why: Classify inputs once so the compositor can render vectors at final size.
package artwork

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/srwiley/oksvg"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

// Kind distinguishes resolution-independent inputs from pixel inputs.
type Kind int

const (
	KindRaster Kind = iota
	KindVector
)

func (k Kind) String() string {
	if k == KindVector {
		return "vector"
	}
	return "raster"
}

const supportedExtensions = "svg, png, jpg, jpeg, bmp, gif, tiff, or tif"

var rasterExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"bmp":  true,
	"gif":  true,
	"tiff": true,
	"tif":  true,
}

// Source is a loaded master image. Vector sources keep their document bytes
// and are rasterized per request.
type Source struct {
	Path   string
	Kind   Kind
	raster *image.NRGBA
	svg    []byte
	width  float64
	height float64
}

// Size returns the native size in pixels (viewBox units for vectors).
func (s *Source) Size() (float64, float64) {
	return s.width, s.height
}

// Load classifies path by extension and decodes it.
func Load(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &brand.FileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, &brand.InvalidFileTypeError{Expected: supportedExtensions, Actual: "directory"}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch {
	case ext == "svg":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return NewVector(path, data)
	case rasterExtensions[ext]:
		return loadRaster(path)
	default:
		actual := ext
		if actual == "" {
			actual = "unknown"
		}
		return nil, &brand.InvalidFileTypeError{Expected: supportedExtensions, Actual: actual}
	}
}

// NewVector parses an SVG document.
func NewVector(path string, data []byte) (*Source, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: parse svg %s: %w", brand.ErrTransformation, path, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%w: svg %s has an empty viewBox", brand.ErrTransformation, path)
	}
	return &Source{
		Path:   path,
		Kind:   KindVector,
		svg:    data,
		width:  icon.ViewBox.W,
		height: icon.ViewBox.H,
	}, nil
}

// NewRaster wraps an already decoded image.
func NewRaster(path string, img image.Image) *Source {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return &Source{
		Path:   path,
		Kind:   KindRaster,
		raster: nrgba,
		width:  float64(b.Dx()),
		height: float64(b.Dy()),
	}
}

func loadRaster(path string) (*Source, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect %s: %w", path, err)
	}
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, &brand.InvalidFileTypeError{Expected: supportedExtensions, Actual: mime.String()}
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", brand.ErrTransformation, path, err)
	}
	return NewRaster(path, img), nil
}

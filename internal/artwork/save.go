// Where: internal/artwork/save.go
// What: Image encoding by configured output format.
// Why: The output format comes from config, not from the output file extension.
package artwork

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

func formatFor(f brand.OutputFormat) (imaging.Format, error) {
	switch f {
	case brand.FormatPNG, "":
		return imaging.PNG, nil
	case brand.FormatJPG:
		return imaging.JPEG, nil
	case brand.FormatBMP:
		return imaging.BMP, nil
	case brand.FormatTIFF:
		return imaging.TIFF, nil
	case brand.FormatGIF:
		return imaging.GIF, nil
	}
	return 0, fmt.Errorf("%w: unsupported output format %q", brand.ErrConfig, f)
}

// Encode serializes img in the given format.
func Encode(img image.Image, format brand.OutputFormat) ([]byte, error) {
	f, err := formatFor(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Save encodes img and writes it to path, creating parent directories.
func Save(img image.Image, path string, format brand.OutputFormat) error {
	data, err := Encode(img, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SavePNG is Save with PNG encoding.
func SavePNG(img image.Image, path string) error {
	return Save(img, path, brand.FormatPNG)
}

// RasterToFile runs one raster transformation from resolved paths.
func RasterToFile(t brand.Raster, input, output string) error {
	src, err := Load(input)
	if err != nil {
		return err
	}
	img, err := Compose(src, RequestFor(t))
	if err != nil {
		return err
	}
	return Save(img, output, t.Format)
}

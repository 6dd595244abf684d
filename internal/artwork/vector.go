// Where: internal/artwork/vector.go
// What: SVG rasterization at an exact pixel size.
// Why: Vectors are rendered at the final resolution instead of resized from a bitmap.
package artwork

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

func rasterizeSVG(data []byte, w, h int) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: parse svg: %w", brand.ErrTransformation, err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return unpremultiply(img), nil
}

// unpremultiply converts premultiplied RGBA into straight-alpha NRGBA.
// Fully transparent pixels keep their channels untouched.
func unpremultiply(src *image.RGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		a := uint32(dst.Pix[i+3])
		if a == 0 || a == 0xff {
			continue
		}
		for c := 0; c < 3; c++ {
			v := uint32(dst.Pix[i+c]) * 0xff / a
			if v > 0xff {
				v = 0xff
			}
			dst.Pix[i+c] = uint8(v)
		}
	}
	return dst
}

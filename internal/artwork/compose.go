// Where: internal/artwork/compose.go
// What: Fit-strategy compositor for raster outputs.
// Why: Share one geometry implementation across raster, icon, and catalog outputs.
package artwork

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/poruru-code/brandgen/internal/domain/brand"
)

// ceilEpsilon absorbs float error so exact ratios such as 200*0.4 stay at 80.
const ceilEpsilon = 1e-9

// Request describes the target canvas and how the source is fitted into it.
type Request struct {
	Width    int
	Height   int
	PaddingW int
	PaddingH int
	OffsetX  int
	OffsetY  int
	Fit      brand.FitStrategy
}

// RequestFor builds a Request from a raster transformation, treating absent
// padding and offsets as zero.
func RequestFor(t brand.Raster) Request {
	return Request{
		Width:    t.Width,
		Height:   t.Height,
		PaddingW: deref(t.PaddingWidth),
		PaddingH: deref(t.PaddingHeight),
		OffsetX:  deref(t.OffsetX),
		OffsetY:  deref(t.OffsetY),
		Fit:      t.Fit.OrDefault(),
	}
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// Layout is the computed geometry of one composition.
type Layout struct {
	BoxW, BoxH       int
	ScaledW, ScaledH int
	ContentW         int
	ContentH         int
	X, Y             int
	Crop             bool
}

// Plan computes the layout for a source of native size (srcW, srcH).
func Plan(srcW, srcH float64, req Request) (Layout, error) {
	if req.Width <= 0 || req.Height <= 0 {
		return Layout{}, fmt.Errorf("%w: target size %dx%d must be positive", brand.ErrTransformation, req.Width, req.Height)
	}
	if srcW <= 0 || srcH <= 0 {
		return Layout{}, fmt.Errorf("%w: source has no pixels", brand.ErrTransformation)
	}
	l := Layout{
		BoxW: max(0, req.Width-2*max(0, req.PaddingW)),
		BoxH: max(0, req.Height-2*max(0, req.PaddingH)),
	}
	if l.BoxW == 0 || l.BoxH == 0 {
		return l, nil
	}

	scaleX := float64(l.BoxW) / srcW
	scaleY := float64(l.BoxH) / srcH
	switch req.Fit.OrDefault() {
	case brand.FitFill:
		l.ScaledW, l.ScaledH = l.BoxW, l.BoxH
	case brand.FitCover:
		s := math.Max(scaleX, scaleY)
		l.ScaledW, l.ScaledH = ceilPx(srcW*s), ceilPx(srcH*s)
		l.Crop = l.ScaledW > l.BoxW || l.ScaledH > l.BoxH
	case brand.FitScaleDown:
		if srcW <= float64(l.BoxW) && srcH <= float64(l.BoxH) {
			l.ScaledW, l.ScaledH = ceilPx(srcW), ceilPx(srcH)
			break
		}
		fallthrough
	case brand.FitContain:
		s := math.Min(scaleX, scaleY)
		l.ScaledW, l.ScaledH = min(ceilPx(srcW*s), l.BoxW), min(ceilPx(srcH*s), l.BoxH)
	default:
		return Layout{}, fmt.Errorf("%w: unknown fit %q", brand.ErrTransformation, req.Fit)
	}

	l.ContentW, l.ContentH = l.ScaledW, l.ScaledH
	if l.Crop {
		l.ContentW, l.ContentH = min(l.ScaledW, l.BoxW), min(l.ScaledH, l.BoxH)
	}
	l.X = clamp((req.Width-l.ContentW)/2+req.OffsetX, -l.ContentW, req.Width)
	l.Y = clamp((req.Height-l.ContentH)/2+req.OffsetY, -l.ContentH, req.Height)
	return l, nil
}

// Compose fits src into a transparent Width x Height canvas.
func Compose(src *Source, req Request) (*image.NRGBA, error) {
	srcW, srcH := src.Size()
	layout, err := Plan(srcW, srcH, req)
	if err != nil {
		return nil, err
	}
	canvas := imaging.New(req.Width, req.Height, color.NRGBA{})
	if layout.ContentW == 0 || layout.ContentH == 0 {
		return canvas, nil
	}

	scaled, err := src.Render(layout.ScaledW, layout.ScaledH)
	if err != nil {
		return nil, err
	}
	if layout.Crop {
		x0 := (layout.ScaledW - layout.ContentW) / 2
		y0 := (layout.ScaledH - layout.ContentH) / 2
		scaled = imaging.Crop(scaled, image.Rect(x0, y0, x0+layout.ContentW, y0+layout.ContentH))
	}

	return imaging.Overlay(canvas, scaled, image.Pt(layout.X, layout.Y), 1.0), nil
}

// Render scales src to exactly w x h. Vectors are rasterized at that size.
func (s *Source) Render(w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: render size %dx%d must be positive", brand.ErrTransformation, w, h)
	}
	if s.Kind == KindVector {
		return rasterizeSVG(s.svg, w, h)
	}
	b := s.raster.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return imaging.Clone(s.raster), nil
	}
	return imaging.Resize(s.raster, w, h, imaging.Lanczos), nil
}

// Square renders src into a size x size canvas with Contain and no padding.
func Square(src *Source, size int) (*image.NRGBA, error) {
	return Compose(src, Request{Width: size, Height: size, Fit: brand.FitContain})
}

func ceilPx(v float64) int {
	return max(1, int(math.Ceil(v-ceilEpsilon)))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

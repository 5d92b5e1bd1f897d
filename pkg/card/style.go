// style.go — The style/decoration layer: palettes, gradients, glass
// panels, soft shadows, chips and the vignette. Style is a strategy
// interface so a different visual treatment can be swapped in at
// composition time without touching the pipeline.
package card

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Palette holds the colors derived from a condition class.
type Palette struct {
	Top    color.NRGBA // sky gradient top
	Bottom color.NRGBA // sky gradient bottom
	Accent color.NRGBA // temperature highlight
}

// Style renders the card's reusable visual primitives. Overlay may
// return nil when the condition calls for no particles.
type Style interface {
	Palette(c Condition) Palette
	Gradient(w, h int, top, bottom color.NRGBA) image.Image
	Panel(w, h int) image.Image
	Shadow(w, h int) (image.Image, image.Point)
	Chip(text string, face font.Face) image.Image
	Overlay(w, h int, c Condition, seed int64) image.Image
	Vignette(w, h int) image.Image
}

// NeutralPalette is the fixed night-sky background used when the
// background policy ignores conditions.
var NeutralPalette = Palette{
	Top:    hexNRGBA("#11161e"),
	Bottom: hexNRGBA("#2a3340"),
	Accent: hexNRGBA("#e0e6ec"),
}

var palettes = map[Condition]Palette{
	Clear:  {hexNRGBA("#2f6fb2"), hexNRGBA("#8fc4e8"), hexNRGBA("#ffd166")},
	Cloudy: {hexNRGBA("#4b5a6b"), hexNRGBA("#8a97a5"), hexNRGBA("#e0e6ec")},
	Rain:   {hexNRGBA("#2b3a52"), hexNRGBA("#5a708c"), hexNRGBA("#6fb3e0")},
	Snow:   {hexNRGBA("#5a6b84"), hexNRGBA("#aebfd4"), hexNRGBA("#e8f2ff")},
	Storm:  {hexNRGBA("#1d2433"), hexNRGBA("#46536b"), hexNRGBA("#b388ff")},
}

// FrostedStyle is the concrete Style: translucent glass panels with soft
// shadows over a condition-tinted sky. px is the supersample factor, so
// stroke widths and radii stay proportional at any resolution.
type FrostedStyle struct {
	px int
}

// NewFrostedStyle creates the frosted style for the given supersample
// factor (clamped to ≥1).
func NewFrostedStyle(scale int) *FrostedStyle {
	return &FrostedStyle{px: max(scale, 1)}
}

// Palette is a fixed table lookup, total over all classes.
func (s *FrostedStyle) Palette(c Condition) Palette {
	if p, ok := palettes[c]; ok {
		return p
	}
	return palettes[Cloudy]
}

// Gradient builds a vertical linear gradient. One 1px-wide scanline is
// interpolated and stretched to full width.
func (s *FrostedStyle) Gradient(w, h int, top, bottom color.NRGBA) image.Image {
	strip := image.NewNRGBA(image.Rect(0, 0, 1, h))
	div := max(h-1, 1)
	for y := 0; y < h; y++ {
		strip.SetNRGBA(0, y, lerpNRGBA(top, bottom, float64(y)/float64(div)))
	}
	return imaging.Resize(strip, w, h, imaging.NearestNeighbor)
}

// Panel renders the frosted glass surface backing a city column.
func (s *FrostedStyle) Panel(w, h int) image.Image {
	px := float64(s.px)
	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(px, px, float64(w)-2*px, float64(h)-2*px, 28*px)
	dc.SetRGBA255(255, 255, 255, 30)
	dc.FillPreserve()
	dc.SetRGBA255(255, 255, 255, 70)
	dc.SetLineWidth(2 * px)
	dc.Stroke()
	return dc.Image()
}

// Shadow renders the blurred drop shadow for a w×h panel. The returned
// point is the offset to add to the panel origin when compositing, so
// the shadow sits slightly below its panel.
func (s *FrostedStyle) Shadow(w, h int) (image.Image, image.Point) {
	margin := 24 * s.px
	dc := gg.NewContext(w+2*margin, h+2*margin)
	dc.DrawRoundedRectangle(float64(margin), float64(margin), float64(w), float64(h), float64(28*s.px))
	dc.SetRGBA255(0, 0, 0, 150)
	dc.Fill()

	blurred := imaging.Blur(dc.Image(), float64(6*s.px))
	return blurred, image.Pt(-margin, -margin+10*s.px)
}

// Chip renders an auto-sized translucent pill around centered text.
func (s *FrostedStyle) Chip(text string, face font.Face) image.Image {
	measure := gg.NewContext(1, 1)
	measure.SetFontFace(face)
	tw, th := measure.MeasureString(text)

	padX := th * 0.9
	padY := th * 0.45
	w := int(tw + 2*padX)
	h := int(th + 2*padY)

	px := float64(s.px)
	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(px, px, float64(w)-2*px, float64(h)-2*px, float64(h)/2-px)
	dc.SetRGBA255(255, 255, 255, 36)
	dc.FillPreserve()
	dc.SetRGBA255(255, 255, 255, 90)
	dc.SetLineWidth(px)
	dc.Stroke()

	dc.SetFontFace(face)
	dc.SetRGBA255(255, 255, 255, 235)
	dc.DrawStringAnchored(text, float64(w)/2, float64(h)/2, 0.5, 0.5)
	return dc.Image()
}

// Vignette renders the edge-darkening mask: a blurred white ellipse on
// black, inverted into the alpha of a black overlay. The mask is built
// at an eighth of the canvas size and upscaled, which keeps the large
// blur cheap without visible banding.
func (s *FrostedStyle) Vignette(w, h int) image.Image {
	mw := max(w/8, 1)
	mh := max(h/8, 1)

	mask := gg.NewContext(mw, mh)
	mask.SetRGB(0, 0, 0)
	mask.Clear()
	mask.SetRGB(1, 1, 1)
	mask.DrawEllipse(float64(mw)/2, float64(mh)/2, float64(mw)*0.62, float64(mh)*0.62)
	mask.Fill()
	blurred := imaging.Blur(mask.Image(), float64(mw)/14)

	out := image.NewNRGBA(image.Rect(0, 0, mw, mh))
	for y := 0; y < mh; y++ {
		for x := 0; x < mw; x++ {
			bright := blurred.NRGBAAt(x, y).R
			a := uint8(float64(255-bright) * 0.55)
			out.SetNRGBA(x, y, color.NRGBA{0, 0, 0, a})
		}
	}
	return imaging.Resize(out, w, h, imaging.Lanczos)
}

// lerpNRGBA interpolates two colors component-wise, t in [0, 1].
func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}

// hexNRGBA parses "#rrggbb" or "#rrggbbaa" into color.NRGBA.
// Returns opaque white on any parse error (safe default for rendering).
func hexNRGBA(hex string) color.NRGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{255, 255, 255, 255}
	}

	parse := func(i int) uint8 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return 255
		}
		return uint8(v)
	}

	c := color.NRGBA{parse(0), parse(2), parse(4), 255}
	if len(hex) == 8 {
		c.A = parse(6)
	}
	return c
}

// layout.go — Abstract card geometry. Anchors are expressed as fractions
// of column height, so the same layout holds at any supersample factor.
package card

import "image"

// Target output resolution. Rendering may happen at an integer multiple
// of this and is downscaled by the writer.
const (
	TargetWidth  = 1600
	TargetHeight = 900
)

// Fractional anchor positions within a column, top to bottom.
const (
	fracTitle     = 0.12
	fracDateChip  = 0.21
	fracIcon      = 0.46
	fracTemp      = 0.66
	fracStatus    = 0.76
	fracRangeChip = 0.86

	fracIconHeight = 0.28
)

// Geometry is the computed pixel-space layout for one render.
type Geometry struct {
	Width, Height int // canvas size, already supersampled
	Scale         int
	Columns       [2]Column
}

// Column is one city's bounding box and element anchors.
type Column struct {
	Rect image.Rectangle

	Title     image.Point
	DateChip  image.Point
	Icon      image.Point
	Temp      image.Point
	Status    image.Point
	RangeChip image.Point

	IconHeight int
}

// ComputeGeometry derives the full card geometry from the target canvas
// size and the supersample factor (clamped to ≥1). Pure: same inputs
// always produce the same geometry.
func ComputeGeometry(width, height, scale int) Geometry {
	scale = max(scale, 1)
	w := width * scale
	h := height * scale

	g := Geometry{Width: w, Height: h, Scale: scale}

	marginX := int(float64(w) * 0.030)
	marginY := int(float64(h) * 0.055)
	colWidth := w / 2

	for i := range g.Columns {
		rect := image.Rect(i*colWidth+marginX, marginY, (i+1)*colWidth-marginX, h-marginY)
		cx := (rect.Min.X + rect.Max.X) / 2
		anchor := func(frac float64) image.Point {
			return image.Pt(cx, rect.Min.Y+int(float64(rect.Dy())*frac))
		}

		g.Columns[i] = Column{
			Rect:       rect,
			Title:      anchor(fracTitle),
			DateChip:   anchor(fracDateChip),
			Icon:       anchor(fracIcon),
			Temp:       anchor(fracTemp),
			Status:     anchor(fracStatus),
			RangeChip:  anchor(fracRangeChip),
			IconHeight: int(float64(rect.Dy()) * fracIconHeight),
		}
	}

	return g
}

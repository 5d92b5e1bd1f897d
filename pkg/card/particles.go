// particles.go — Seeded decorative overlays. Rain and storm draw
// diagonal streaks, snow draws soft circles, clear and cloudy get
// nothing. All positions come from an explicitly seeded PRNG, so the
// same (class, seed, size) always yields identical pixels.
package card

import (
	"image"
	"math/rand"

	"github.com/fogleman/gg"
)

// Overlay returns the particle layer for a condition, or nil when the
// class has no particles.
func (s *FrostedStyle) Overlay(w, h int, c Condition, seed int64) image.Image {
	switch c {
	case Rain:
		return s.streaks(w, h, seed, 90)
	case Storm:
		return s.streaks(w, h, seed, 150)
	case Snow:
		return s.flakes(w, h, seed, 130)
	default:
		return nil
	}
}

// streaks draws short diagonal rain lines. count is the density at
// target resolution; the supersample factor scales widths, not counts.
func (s *FrostedStyle) streaks(w, h int, seed int64, count int) image.Image {
	rng := rand.New(rand.NewSource(seed))
	px := float64(s.px)
	dc := gg.NewContext(w, h)
	dc.SetLineWidth(1.6 * px)

	for i := 0; i < count; i++ {
		x := rng.Float64() * float64(w)
		y := rng.Float64() * float64(h)
		length := (0.018 + rng.Float64()*0.016) * float64(h)
		alpha := 40 + rng.Intn(55)

		dc.SetRGBA255(255, 255, 255, alpha)
		dc.DrawLine(x, y, x-length*0.36, y+length)
		dc.Stroke()
	}
	return dc.Image()
}

// flakes draws small filled snow circles.
func (s *FrostedStyle) flakes(w, h int, seed int64, count int) image.Image {
	rng := rand.New(rand.NewSource(seed))
	px := float64(s.px)
	dc := gg.NewContext(w, h)

	for i := 0; i < count; i++ {
		x := rng.Float64() * float64(w)
		y := rng.Float64() * float64(h)
		r := (1.2 + rng.Float64()*2.2) * px
		alpha := 60 + rng.Intn(120)

		dc.SetRGBA255(255, 255, 255, alpha)
		dc.DrawCircle(x, y, r)
		dc.Fill()
	}
	return dc.Image()
}

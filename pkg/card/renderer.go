// renderer.go — Card composition. One straight-line pass: sky gradient,
// background panel, per-column glass panels, city content, particle
// overlay, vignette. Every anomaly short of a missing background panel
// (handled at asset-open time) is absorbed into a degraded-but-valid card.
package card

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/overcastlab/weathercard/pkg/assets"
	"github.com/overcastlab/weathercard/pkg/payload"
)

// Background gradient policies.
const (
	// PolicyPrimary derives the sky gradient from the first city's
	// condition (the dominant condition).
	PolicyPrimary = "primary"
	// PolicyFixed always uses the neutral night gradient.
	PolicyFixed = "fixed"
)

// noDataText is the placeholder message for payloads without cities.
const noDataText = "Нет данных"

// Options configures one renderer instance.
type Options struct {
	Supersample      int    // integer ≥1; rendering happens at this multiple
	BackgroundPolicy string // PolicyPrimary or PolicyFixed
	ParticleSeed     int64  // fixed seed for decorative overlays
}

// Renderer composes weather cards from a payload and a resolved asset
// library. All configuration is explicit; no state leaks between renders.
type Renderer struct {
	lib   *assets.Library
	style Style
	opts  Options
}

// NewRenderer creates a renderer. The style is chosen by the caller at
// composition time.
func NewRenderer(lib *assets.Library, style Style, opts Options) *Renderer {
	opts.Supersample = max(opts.Supersample, 1)
	if opts.BackgroundPolicy != PolicyFixed {
		opts.BackgroundPolicy = PolicyPrimary
	}
	return &Renderer{lib: lib, style: style, opts: opts}
}

// faceSet holds the per-render font faces, sized from canvas height.
type faceSet struct {
	title   font.Face
	numeral font.Face
	body    font.Face
	small   font.Face
}

func (r *Renderer) faces(h int) faceSet {
	fh := float64(h)
	return faceSet{
		title:   r.lib.Fonts.Face(assets.RoleTitle, assets.WeightBold, fh*0.060),
		numeral: r.lib.Fonts.Face(assets.RoleNumeral, assets.WeightBold, fh*0.078),
		body:    r.lib.Fonts.Face(assets.RoleBody, assets.WeightRegular, fh*0.046),
		small:   r.lib.Fonts.Face(assets.RoleSmall, assets.WeightRegular, fh*0.036),
	}
}

// Render composes the full card at the supersampled resolution. The
// caller downscales and persists via Writer. Never fails: a payload
// without data produces the placeholder card.
func (r *Renderer) Render(p *payload.Payload) image.Image {
	geom := ComputeGeometry(TargetWidth, TargetHeight, r.opts.Supersample)
	cities, hasData := p.TwoCities()
	dominant := Classify(int(cities[0].Current.Code))
	faces := r.faces(geom.Height)

	dc := gg.NewContext(geom.Width, geom.Height)

	// Sky and background panel.
	pal := NeutralPalette
	if r.opts.BackgroundPolicy == PolicyPrimary && hasData {
		pal = r.style.Palette(dominant)
	}
	dc.DrawImage(r.style.Gradient(geom.Width, geom.Height, pal.Top, pal.Bottom), 0, 0)
	panel := imaging.Resize(r.lib.Background(), geom.Width, geom.Height, imaging.Lanczos)
	dc.DrawImage(panel, 0, 0)

	// Column surfaces.
	for _, col := range geom.Columns {
		shadow, offset := r.style.Shadow(col.Rect.Dx(), col.Rect.Dy())
		dc.DrawImage(shadow, col.Rect.Min.X+offset.X, col.Rect.Min.Y+offset.Y)
		dc.DrawImage(r.style.Panel(col.Rect.Dx(), col.Rect.Dy()), col.Rect.Min.X, col.Rect.Min.Y)
	}

	if hasData {
		for i, col := range geom.Columns {
			r.renderCity(dc, col, cities[i], p, faces, geom.Scale)
		}
		if overlay := r.style.Overlay(geom.Width, geom.Height, dominant, r.opts.ParticleSeed); overlay != nil {
			dc.DrawImage(overlay, 0, 0)
		}
	} else {
		dc.SetFontFace(faces.title)
		dc.SetRGBA255(255, 255, 255, 255)
		dc.DrawStringAnchored(noDataText, float64(geom.Width)/2, float64(geom.Height)/2, 0.5, 0.5)
	}

	dc.DrawImage(r.style.Vignette(geom.Width, geom.Height), 0, 0)

	return dc.Image()
}

// renderCity draws one city column: title, date chip, icon, temperature,
// status line and range chip, each at its geometry anchor. Missing
// fields render their defaults; nothing here can abort the card.
func (r *Renderer) renderCity(dc *gg.Context, col Column, city payload.City, p *payload.Payload, faces faceSet, scale int) {
	px := float64(scale)
	cond := Classify(int(city.Current.Code))
	pal := r.style.Palette(cond)
	cx := float64(col.Title.X)

	// City name with a drop-shadow text effect.
	name := strings.TrimSpace(city.Name)
	if name == "" {
		name = Placeholder
	}
	dc.SetFontFace(faces.title)
	dc.SetRGBA255(0, 0, 0, 110)
	dc.DrawStringAnchored(name, cx+2*px, float64(col.Title.Y)+2*px, 0.5, 0.5)
	dc.SetRGBA255(255, 255, 255, 255)
	dc.DrawStringAnchored(name, cx, float64(col.Title.Y), 0.5, 0.5)

	// Tomorrow's date, localized. Omitted when the payload date is unusable.
	if label := DateLabel(p.Date, p.Zone()); label != "" {
		chip := r.style.Chip(label, faces.small)
		dc.DrawImageAnchored(chip, col.DateChip.X, col.DateChip.Y, 0.5, 0.5)
	}

	// Condition icon, scaled to a fixed fraction of column height.
	icon := r.lib.Icon(cond.String())
	if b := icon.Bounds(); b.Dx() > 0 && b.Dy() > 0 {
		scaled := imaging.Resize(icon, col.IconHeight*b.Dx()/b.Dy(), col.IconHeight, imaging.Lanczos)
		dc.DrawImageAnchored(scaled, col.Icon.X, col.Icon.Y, 0.5, 0.5)
	}

	// Current temperature in the condition accent.
	dc.SetFontFace(faces.numeral)
	dc.SetColor(pal.Accent)
	dc.DrawStringAnchored(FormatTemp(float64(city.Current.Temp)), cx, float64(col.Temp.Y), 0.5, 0.5)

	// Wind and precipitation share the status line.
	status := FormatWind(float64(city.Current.Wind)) + "  •  " + FormatPrecip(float64(city.Daily.PrecipProb))
	dc.SetFontFace(faces.body)
	dc.SetRGBA255(255, 255, 255, 225)
	dc.DrawStringAnchored(status, cx, float64(col.Status.Y), 0.5, 0.5)

	// Daily range chip.
	rangeChip := r.style.Chip(FormatRange(float64(city.Daily.TempMin), float64(city.Daily.TempMax)), faces.small)
	dc.DrawImageAnchored(rangeChip, col.RangeChip.X, col.RangeChip.Y, 0.5, 0.5)
}

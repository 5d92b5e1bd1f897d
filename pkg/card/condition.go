// Package card implements the weather-card rendering pipeline: layout
// geometry, the frosted style/decoration layer, per-city composition and
// the PNG output writer.
package card

// Condition is the 5-way class derived from a WMO weather code. It
// drives icon selection, accent/gradient colors and particle overlays.
type Condition int

const (
	Cloudy Condition = iota // default for unrecognized codes
	Clear
	Rain
	Snow
	Storm
)

// Classify maps a WMO weather code to its condition class. Total: every
// integer resolves to exactly one class, defaulting to Cloudy.
func Classify(code int) Condition {
	switch code {
	case 95, 96, 99:
		return Storm
	case 71, 73, 75, 77, 85, 86:
		return Snow
	case 51, 53, 55, 61, 63, 65, 80, 81, 82:
		return Rain
	case 0, 1:
		return Clear
	default:
		return Cloudy
	}
}

func (c Condition) String() string {
	switch c {
	case Clear:
		return "clear"
	case Rain:
		return "rain"
	case Snow:
		return "snow"
	case Storm:
		return "storm"
	default:
		return "cloudy"
	}
}

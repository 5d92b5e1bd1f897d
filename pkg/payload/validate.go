// validate.go — Non-fatal payload checks. Everything here is a warning:
// the card still renders, just with the documented fallback behavior.
package payload

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the expected payload date format.
const DateLayout = "2006-01-02"

// Warnings inspects a decoded payload and reports anything the renderer
// will silently degrade around.
func Warnings(p *Payload) []string {
	var warnings []string

	if n := len(p.Cities); n > MaxCities {
		warnings = append(warnings, fmt.Sprintf("payload has %d cities — truncating to %d", n, MaxCities))
	}

	if d := strings.TrimSpace(p.Date); d != "" {
		if _, err := time.Parse(DateLayout, d); err != nil {
			warnings = append(warnings, fmt.Sprintf("unparseable date %q — date chip omitted", d))
		}
	}

	if z := p.Zone(); z != "" {
		if _, err := time.LoadLocation(z); err != nil {
			warnings = append(warnings, fmt.Sprintf("unknown timezone %q — using naive date arithmetic", z))
		}
	}

	return warnings
}

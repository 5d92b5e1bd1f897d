// format.go — Total display formatters. Every function here returns a
// usable string for any float64 input, including NaN and infinities, so
// a degraded payload still renders a valid card.
package card

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Placeholder replaces values that cannot be displayed at all.
const Placeholder = "—"

// Fixed Russian locale tables, Monday-first like the payload's origin.
var (
	ruWeekdays = [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
	ruMonths   = [12]string{"янв", "фев", "мар", "апр", "май", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"}
)

// roundInt rounds half away from zero, matching the documented
// temperature contract (9.7 → 10, -9.7 → -10). NaN and ±Inf become 0.
func roundInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// FormatTemp renders a temperature as a signed integer with unit:
// "+18°C", "-3°C", "+0°C". NaN and infinities render the placeholder.
func FormatTemp(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	return fmt.Sprintf("%+d°C", roundInt(v))
}

// FormatRange renders the daily min/max span, e.g. "+12°C…+20°C".
func FormatRange(lo, hi float64) string {
	return FormatTemp(lo) + "…" + FormatTemp(hi)
}

// FormatWind renders the wind speed line, e.g. "ветер 3".
func FormatWind(v float64) string {
	return fmt.Sprintf("ветер %d", roundInt(v))
}

// FormatPrecip renders the precipitation probability, e.g. "дождь 70%".
func FormatPrecip(v float64) string {
	return fmt.Sprintf("дождь %d%%", roundInt(v))
}

// DateLabel renders the day after dateISO as "Чт, 5 сен", localized to
// the given IANA zone. An unknown zone falls back to naive arithmetic;
// an unparseable date returns "" (the date chip is omitted) so output
// never depends on the wall clock.
func DateLabel(dateISO, tz string) string {
	loc := time.UTC
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(dateISO), loc)
	if err != nil {
		return ""
	}

	d := t.AddDate(0, 0, 1)
	dow := (int(d.Weekday()) + 6) % 7 // Monday-first index
	return fmt.Sprintf("%s, %d %s", ruWeekdays[dow], d.Day(), ruMonths[d.Month()-1])
}

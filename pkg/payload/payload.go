// Package payload defines the weather payload delivered through a CI
// dispatch event and the coercion rules that keep decoding total: a
// malformed field degrades to its zero default instead of failing the run.
package payload

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MaxCities is the number of columns on the card. Payloads with fewer
// cities are padded with empty records, longer ones are truncated.
const MaxCities = 2

// DefaultJobID names the output file when the payload carries no job id.
const DefaultJobID = "no_job"

// Number is a float64 that tolerates anything JSON throws at it:
// numbers, numeric strings, null, or garbage. Garbage decodes to 0.
type Number float64

// UnmarshalJSON never returns an error. Non-numeric input becomes 0.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*n = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// Payload is the weather-data record for one render.
type Payload struct {
	JobID    string `json:"job_id"`
	Date     string `json:"date"` // YYYY-MM-DD; "tomorrow" derives from this
	TZ       string `json:"tz"`
	Timezone string `json:"timezone"`
	Cities   []City `json:"cities"`
}

// City is one column's worth of forecast data.
type City struct {
	Name    string  `json:"name"`
	Current Current `json:"current"`
	Daily   Daily   `json:"daily"`
}

// Current holds the present conditions.
type Current struct {
	Temp Number `json:"temp"`
	Wind Number `json:"wind"`
	Code Number `json:"code"` // WMO weather code
}

// Daily holds tomorrow's aggregates.
type Daily struct {
	TempMin    Number `json:"tmin"`
	TempMax    Number `json:"tmax"`
	PrecipProb Number `json:"precip_prob"`
}

// Zone returns the IANA timezone name, preferring the short "tz" key.
func (p *Payload) Zone() string {
	if p.TZ != "" {
		return p.TZ
	}
	return p.Timezone
}

// JobName returns the output filename stem, falling back to DefaultJobID.
func (p *Payload) JobName() string {
	id := strings.TrimSpace(p.JobID)
	if id == "" {
		return DefaultJobID
	}
	return id
}

// TwoCities normalizes the city list to exactly MaxCities entries,
// padding with empty records or truncating as needed. The second return
// reports whether any real city data arrived at all; a payload with none
// renders as a placeholder card.
func (p *Payload) TwoCities() ([MaxCities]City, bool) {
	var out [MaxCities]City
	copy(out[:], p.Cities)
	return out, len(p.Cities) > 0
}

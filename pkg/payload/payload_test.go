package payload

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `18.4`, 18.4},
		{"integer", `70`, 70},
		{"negative", `-3.5`, -3.5},
		{"numeric string", `"9.7"`, 9.7},
		{"padded string", `" 12 "`, 12},
		{"null", `null`, 0},
		{"garbage string", `"n/a"`, 0},
		{"object", `{"v":1}`, 0},
		{"array", `[1,2]`, 0},
		{"bool", `true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.want, float64(n))
		})
	}
}

func TestPayloadDecode(t *testing.T) {
	raw := `{
		"job_id": "abc123",
		"date": "2024-09-04",
		"tz": "Europe/Moscow",
		"cities": [
			{"name": "Moscow", "current": {"temp": 18.4, "wind": 3.2, "code": 61},
			 "daily": {"tmin": 12, "tmax": 20, "precip_prob": 70}},
			{"name": "Novokuznetsk", "current": {"temp": 9.7, "wind": 5.0, "code": 0},
			 "daily": {"tmin": 4, "tmax": 11, "precip_prob": 5}}
		]
	}`

	var p Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "abc123", p.JobName())
	assert.Equal(t, "Europe/Moscow", p.Zone())
	require.Len(t, p.Cities, 2)
	assert.Equal(t, "Moscow", p.Cities[0].Name)
	assert.Equal(t, 61.0, float64(p.Cities[0].Current.Code))
	assert.Equal(t, 9.7, float64(p.Cities[1].Current.Temp))
	assert.Equal(t, 5.0, float64(p.Cities[1].Daily.PrecipProb))
}

func TestJobNameDefault(t *testing.T) {
	assert.Equal(t, DefaultJobID, (&Payload{}).JobName())
	assert.Equal(t, DefaultJobID, (&Payload{JobID: "   "}).JobName())
	assert.Equal(t, "run42", (&Payload{JobID: " run42 "}).JobName())
}

func TestZonePrefersShortKey(t *testing.T) {
	p := &Payload{TZ: "Europe/Moscow", Timezone: "Asia/Tokyo"}
	assert.Equal(t, "Europe/Moscow", p.Zone())

	p = &Payload{Timezone: "Asia/Tokyo"}
	assert.Equal(t, "Asia/Tokyo", p.Zone())
}

func TestTwoCitiesNormalization(t *testing.T) {
	tests := []struct {
		name    string
		cities  []City
		hasData bool
		names   [MaxCities]string
	}{
		{"empty", nil, false, [MaxCities]string{"", ""}},
		{"one city pads", []City{{Name: "Omsk"}}, true, [MaxCities]string{"Omsk", ""}},
		{"two cities", []City{{Name: "A"}, {Name: "B"}}, true, [MaxCities]string{"A", "B"}},
		{"three cities truncate", []City{{Name: "A"}, {Name: "B"}, {Name: "C"}}, true, [MaxCities]string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Payload{Cities: tt.cities}
			got, hasData := p.TwoCities()
			assert.Equal(t, tt.hasData, hasData)
			for i := range got {
				assert.Equal(t, tt.names[i], got[i].Name)
			}
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEnvelope(t *testing.T) {
	path := writeFile(t, "event.json", `{
		"action": "render-card",
		"client_payload": {"job_id": "abc123", "cities": [{"name": "Moscow"}]}
	}`)

	p, warnings := Load(path)
	assert.Empty(t, warnings)
	assert.Equal(t, "abc123", p.JobName())
	require.Len(t, p.Cities, 1)
	assert.Equal(t, "Moscow", p.Cities[0].Name)
}

func TestLoadBarePayload(t *testing.T) {
	path := writeFile(t, "payload.json", `{"job_id": "direct", "cities": []}`)

	p, warnings := Load(path)
	assert.Empty(t, warnings)
	assert.Equal(t, "direct", p.JobName())
}

func TestLoadDegradesToDefaults(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"empty path", func(t *testing.T) string { return "" }},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }},
		{"malformed json", func(t *testing.T) string { return writeFile(t, "bad.json", `{"job_id":`) }},
		{"wrong shape", func(t *testing.T) string { return writeFile(t, "arr.json", `[1,2,3]`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, warnings := Load(tt.path(t))
			require.NotNil(t, p)
			assert.NotEmpty(t, warnings)
			assert.Equal(t, DefaultJobID, p.JobName())
			_, hasData := p.TwoCities()
			assert.False(t, hasData)
		})
	}
}

func TestLoadNullClientPayload(t *testing.T) {
	path := writeFile(t, "event.json", `{"client_payload": null, "job_id": "outer"}`)

	p, warnings := Load(path)
	assert.Empty(t, warnings)
	assert.Equal(t, "outer", p.JobName())
}

func TestWarnings(t *testing.T) {
	p := &Payload{
		Date:   "04.09.2024",
		TZ:     "Mars/Olympus",
		Cities: []City{{}, {}, {}},
	}
	warnings := Warnings(p)
	assert.Len(t, warnings, 3)

	clean := &Payload{Date: "2024-09-04", TZ: "Europe/Moscow", Cities: []City{{}, {}}}
	assert.Empty(t, Warnings(clean))
}

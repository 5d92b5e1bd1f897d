// loader.go — Read the dispatch event file and extract the payload.
//
// The event file is the JSON document GitHub writes for repository_dispatch
// runs; the payload sits under "client_payload". A bare payload file (no
// envelope) is accepted too. Loading never fails: any missing or malformed
// input yields the all-defaults payload plus a warning, and the renderer
// produces a placeholder card from it.
package payload

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the event file at path and returns the decoded payload.
// Returns warnings for anything it had to paper over.
func Load(path string) (*Payload, []string) {
	var warnings []string

	if path == "" {
		warnings = append(warnings, "no event file configured — rendering placeholder card")
		return &Payload{}, warnings
	}

	data, err := os.ReadFile(path)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("read event file: %v — using all defaults", err))
		return &Payload{}, warnings
	}

	// Unwrap the repository_dispatch envelope if present.
	var doc struct {
		ClientPayload json.RawMessage `json:"client_payload"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		warnings = append(warnings, fmt.Sprintf("malformed event file: %v — using all defaults", err))
		return &Payload{}, warnings
	}

	body := data
	if len(doc.ClientPayload) > 0 && string(doc.ClientPayload) != "null" {
		body = doc.ClientPayload
	}

	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		warnings = append(warnings, fmt.Sprintf("malformed payload: %v — using all defaults", err))
		return &Payload{}, warnings
	}

	return &p, warnings
}

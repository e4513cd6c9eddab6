package planner

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a JSON object out of a raw text blob that may carry prose
// around it (model commentary, markdown fences). It takes the span from the
// first '{' to the last '}' and tries to parse it as an object.
//
// A false return means "no structured data", not an error; callers proceed to
// their fallback path.
func ExtractJSON(text string) (json.RawMessage, bool) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil, false
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		raw = raw[start : end+1]
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, false
	}
	return json.RawMessage(raw), true
}

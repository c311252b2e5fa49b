package ai

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrNoJSON = errors.New("response does not contain valid JSON")

var fenceRegex = regexp.MustCompile("(?s)^```(?:\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

// ExtractJSON pulls a JSON document out of model output. A surrounding
// markdown code fence is stripped first; if the fenced body does not parse
// the raw text is tried.
func ExtractJSON(text string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)
	if m := fenceRegex.FindStringSubmatch(trimmed); m != nil {
		body := strings.TrimSpace(m[1])
		if json.Valid([]byte(body)) {
			return json.RawMessage(body), nil
		}
	}
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}
	return nil, ErrNoJSON
}

// ParseJSON decodes model output into v and reports whether it succeeded.
func ParseJSON(text string, v any) bool {
	raw, err := ExtractJSON(text)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

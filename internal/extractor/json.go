package extractor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseJSONObject recovers a single JSON object from a model reply that may
// be wrapped in Markdown fences or surrounded by stray text. The model is
// told to answer with raw JSON but does not always comply.
func parseJSONObject(raw string) (map[string]any, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// Keep only the span from the first '{' to the last '}'.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(s[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("unmarshal model reply: %w", err)
	}
	return obj, nil
}

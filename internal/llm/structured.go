package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator validates a parsed value after JSON extraction.
type Validator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw model output,
// tolerating markdown code fences and leading/trailing prose.
func ExtractJSON[T any](raw string, validator Validator[T]) (T, error) {
	return extract[T](raw, "{", "}", validator)
}

// ExtractJSONArray extracts a JSON array of type T from raw model output.
func ExtractJSONArray[T any](raw string, validator Validator[T]) (T, error) {
	return extract[T](raw, "[", "]", validator)
}

func extract[T any](raw, openTok, closeTok string, validator Validator[T]) (T, error) {
	var zero T

	cleaned := stripCodeFences(raw)
	jsonStr := extractBlock(cleaned, openTok, closeTok)
	if jsonStr == "" {
		return zero, fmt.Errorf("%w: no JSON %s...%s block found in response", ErrInvalidOutput, openTok, closeTok)
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// stripCodeFences removes markdown fences (```json ... ``` or ``` ... ```),
// keeping the fenced content.
func stripCodeFences(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// extractBlock returns the first balanced open...close block, skipping
// brackets inside JSON strings.
func extractBlock(s, openTok, closeTok string) string {
	start := strings.Index(s, openTok)
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case !inString && string(ch) == openTok:
			depth++
		case !inString && string(ch) == closeTok:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

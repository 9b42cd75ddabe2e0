// Package extract pulls a JSON object out of free-form model output.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports that no valid JSON object could be extracted. It carries
// a snippet of the offending text for logging. Callers must treat it as
// recoverable, not fatal.
type ParseError struct {
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not extract valid JSON from response: %v", e.Err)
	}
	return "could not extract valid JSON from response"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const snippetLimit = 500

// Object returns the first balanced top-level {...} object in raw, after
// stripping any surrounding markdown code fences. Brace depth is tracked so
// nested objects do not close the match early. If no balanced object is found
// the whole cleaned string is tried as JSON. Anything else is a *ParseError.
func Object(raw string) (string, error) {
	cleaned := stripFences(raw)

	start, end := -1, -1
	depth := 0
	for i, ch := range cleaned {
		switch ch {
		case '{':
			if start == -1 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && start != -1 {
				end = i + 1
			}
		}
		if end != -1 {
			break
		}
	}

	if start != -1 && end != -1 {
		candidate := cleaned[start:end]
		if !json.Valid([]byte(candidate)) {
			return "", &ParseError{Snippet: snippet(raw), Err: fmt.Errorf("balanced object is not valid JSON")}
		}
		return candidate, nil
	}

	if json.Valid([]byte(cleaned)) && cleaned != "" {
		return cleaned, nil
	}

	return "", &ParseError{Snippet: snippet(raw), Err: fmt.Errorf("no JSON object found")}
}

func stripFences(s string) string {
	cleaned := strings.TrimSpace(s)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	}
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func snippet(s string) string {
	if len(s) > snippetLimit {
		return s[:snippetLimit]
	}
	return s
}

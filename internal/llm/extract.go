package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON recovers a JSON object from model output that may wrap it in
// prose or markdown code fences. It returns the first balanced {...} object
// found. Providers with native structured output rarely need this; the
// free-text extraction and judgment paths run every response through it.
func ExtractJSON(text string) (json.RawMessage, error) {
	text = strings.TrimSpace(text)

	// Prefer a fenced block when present.
	if body, ok := fencedBlock(text); ok {
		text = body
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := text[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return nil, fmt.Errorf("extracted object is not valid JSON")
				}
				return json.RawMessage(candidate), nil
			}
		}
	}
	return nil, fmt.Errorf("unbalanced JSON object in response")
}

// fencedBlock returns the body of the first ``` fenced block, tolerating an
// optional language tag such as ```json.
func fencedBlock(text string) (string, bool) {
	open := strings.Index(text, "```")
	if open < 0 {
		return "", false
	}
	rest := text[open+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		// Drop the language tag line if it contains no brace.
		if !strings.ContainsAny(rest[:nl], "{") {
			rest = rest[nl+1:]
		}
	}
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

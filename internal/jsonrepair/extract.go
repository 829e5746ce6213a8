package jsonrepair

import (
	"encoding/json"
	"strings"
)

// extractPayload pulls the JSON payload out of surrounding prose: the
// substring from the first '{' to the last '}', falling back to the first '['
// and last ']'. Returns "" when no payload markers exist.
func extractPayload(text string) string {
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			return text[start : end+1]
		}
		// Opening brace with no close at all: likely truncation, let the
		// balancing step deal with it.
		return text[start:]
	}
	if start := strings.Index(text, "["); start >= 0 {
		if end := strings.LastIndex(text, "]"); end > start {
			return text[start : end+1]
		}
		return text[start:]
	}
	return ""
}

// salvageFragments is the last-resort strategy: pull individually parseable
// "field": value fragments out of the wreckage and assemble a minimal object
// from the ones that survive. Fields that cannot be recovered are simply
// absent; the normalizer fills their defaults.
func salvageFragments(text string) (string, bool) {
	fields := make(map[string]json.RawMessage)
	var order []string

	i := 0
	for i < len(text) {
		key, valueStart, ok := nextFieldStart(text, i)
		if !ok {
			break
		}
		raw, end := scanValue(text, valueStart)
		if raw != "" && json.Valid([]byte(raw)) {
			if _, seen := fields[key]; !seen {
				order = append(order, key)
			}
			fields[key] = json.RawMessage(raw)
			i = end
		} else {
			i = valueStart
		}
	}

	if len(fields) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for idx, key := range order {
		if idx > 0 {
			sb.WriteString(", ")
		}
		keyJSON, _ := json.Marshal(key)
		sb.Write(keyJSON)
		sb.WriteString(": ")
		sb.Write(fields[key])
	}
	sb.WriteByte('}')
	return sb.String(), true
}

// nextFieldStart finds the next `"key":` pattern at or after offset from,
// returning the key and the index where its value starts.
func nextFieldStart(text string, from int) (key string, valueStart int, ok bool) {
	for i := from; i < len(text); i++ {
		if text[i] != '"' {
			continue
		}
		end := scanString(text, i)
		if end < 0 {
			return "", 0, false
		}
		j := end + 1
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		if j < len(text) && text[j] == ':' {
			j++
			for j < len(text) && isSpace(text[j]) {
				j++
			}
			return text[i+1 : end], j, true
		}
		i = end
	}
	return "", 0, false
}

// scanValue returns the maximal candidate JSON value starting at start and the
// index just past it. For containers this is the balanced bracket span; for
// strings the quoted span; for literals the literal token.
func scanValue(text string, start int) (string, int) {
	if start >= len(text) {
		return "", start
	}
	switch c := text[start]; {
	case c == '{' || c == '[':
		end := scanBalanced(text, start)
		if end < 0 {
			return "", start
		}
		return text[start : end+1], end + 1
	case c == '"':
		end := scanString(text, start)
		if end < 0 {
			return "", start
		}
		return text[start : end+1], end + 1
	default:
		end := start
		for end < len(text) && (isLiteralChar(text[end])) {
			end++
		}
		return text[start:end], end
	}
}

// scanString returns the index of the closing quote of the string starting at
// the quote at position start, or -1.
func scanString(text string, start int) int {
	escaped := false
	for i := start + 1; i < len(text); i++ {
		switch {
		case escaped:
			escaped = false
		case text[i] == '\\':
			escaped = true
		case text[i] == '"':
			return i
		}
	}
	return -1
}

// scanBalanced returns the index of the bracket closing the container opened
// at start, or -1 when it never closes.
func scanBalanced(text string, start int) int {
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
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLiteralChar(c byte) bool {
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

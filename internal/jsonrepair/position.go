package jsonrepair

import (
	"encoding/json"
	"errors"
	"strings"
)

// maxPositionPasses bounds the parse-inspect-insert loop. Each pass fixes at
// most one character, so a handful of passes covers realistic LLM damage
// without risking a pathological loop.
const maxPositionPasses = 8

// repairAtPositions repeatedly parses the text and, when the parser reports a
// syntax error with an offset, applies a single targeted edit at that offset
// based on the error class. Stops as soon as the text parses, an error has no
// offset, or an edit makes no progress.
func repairAtPositions(text string) string {
	for pass := 0; pass < maxPositionPasses; pass++ {
		var v any
		err := json.Unmarshal([]byte(text), &v)
		if err == nil {
			return text
		}

		var synErr *json.SyntaxError
		if !errors.As(err, &synErr) {
			return text
		}

		fixed, changed := repairAtOffset(text, int(synErr.Offset), synErr.Error())
		if !changed {
			return text
		}
		text = fixed
	}
	return text
}

// repairAtOffset applies one targeted edit near offset. The offset reported by
// encoding/json points one past the offending byte.
func repairAtOffset(text string, offset int, errMsg string) (string, bool) {
	pos := offset - 1
	if pos < 0 || pos >= len(text) {
		return text, false
	}

	switch {
	case strings.Contains(errMsg, "after object key:value pair"):
		// {"a": 1 "b": 2}: a new key with no separating comma.
		return text[:pos] + "," + text[pos:], true

	case strings.Contains(errMsg, "after object key"):
		// {"a" 1}: the colon went missing.
		return text[:pos] + ":" + text[pos:], true

	case strings.Contains(errMsg, "after array element"):
		// [1 2]: missing comma between elements.
		return text[:pos] + "," + text[pos:], true

	case strings.Contains(errMsg, "looking for beginning of object key string"):
		// {key: 1} reached here means the key fixes did not see it; quote the
		// bare word at the offset.
		return quoteBareWord(text, pos)

	case strings.Contains(errMsg, "looking for beginning of value"):
		// A bare word where a value should be, e.g. {"a": React}.
		return quoteBareWord(text, pos)

	default:
		return text, false
	}
}

// quoteBareWord wraps the unquoted word at pos in double quotes. Inspection is
// limited to a window around the reported position so one bad token cannot
// trigger a rewrite somewhere unrelated.
func quoteBareWord(text string, pos int) (string, bool) {
	const window = 50

	start := pos
	for start > 0 && pos-start < window && isWordChar(text[start-1]) {
		start--
	}
	end := pos
	for end < len(text) && end-pos < window && isWordChar(text[end]) {
		end++
	}
	if start == end {
		return text, false
	}

	word := text[start:end]
	// true/false/null and numbers are already valid; quoting them would only
	// mask a different problem.
	if word == "true" || word == "false" || word == "null" || isNumeric(word) {
		return text, false
	}

	return text[:start] + `"` + word + `"` + text[end:], true
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-' || c == '.'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' && c != 'e' && c != 'E' {
			return false
		}
	}
	return true
}

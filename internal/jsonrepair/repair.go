// Package jsonrepair coerces unreliable LLM text output into valid JSON. LLM
// responses that are supposed to be JSON routinely arrive wrapped in prose or
// markdown fences, truncated mid-structure, or with missing commas, colons,
// and quotes. The package applies an ordered chain of fallback strategies and
// guarantees the caller a parsed value or their own fallback, never an error.
package jsonrepair

import (
	"encoding/json"
	"strings"
)

// CleanFences removes markdown code block wrappers (```json ... ```) from a
// response. LLMs add them even when instructed not to.
func CleanFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}
	return strings.TrimSpace(text)
}

// Repair returns a string that is more likely to be valid JSON than the
// input. It applies payload extraction, the light repair pipeline,
// position-targeted repair, and bracket balancing in that order, stopping as
// soon as the text parses. The order is a contract; an already-valid input is
// returned unchanged.
func Repair(text string) string {
	text = CleanFences(text)
	if json.Valid([]byte(text)) {
		return text
	}

	for _, candidate := range repairCandidates(text) {
		if json.Valid([]byte(candidate)) {
			return candidate
		}
	}

	// Nothing parsed; return the most-repaired form for the caller to
	// inspect or log.
	return finalForm(text)
}

// SafeParse parses text into T, repairing as needed, and returns fallback when
// every strategy fails. It never panics and never returns an error: the whole
// point is that callers need no additional guard around LLM output parsing.
func SafeParse[T any](text string, fallback T) T {
	result, ok := tryParse[T](text)
	if !ok {
		return fallback
	}
	return result
}

// tryParse runs the full strategy chain and reports whether any candidate
// unmarshaled cleanly.
func tryParse[T any](text string) (T, bool) {
	var zero T

	text = CleanFences(text)
	if text == "" {
		return zero, false
	}

	// Strategy 1: direct parse.
	var direct T
	if err := json.Unmarshal([]byte(text), &direct); err == nil {
		return direct, true
	}

	// Strategies 2-5: extraction, light repair, position repair, balancing.
	for _, candidate := range repairCandidates(text) {
		var v T
		if err := json.Unmarshal([]byte(candidate), &v); err == nil {
			return v, true
		}
	}

	// Strategy 6: salvage individually parseable fragments.
	if assembled, ok := salvageFragments(text); ok {
		var v T
		if err := json.Unmarshal([]byte(assembled), &v); err == nil {
			return v, true
		}
	}

	return zero, false
}

// repairCandidates generates progressively more aggressive repairs of text,
// in the contract order: extracted payload, lightly repaired payload,
// position-repaired text, and finally bracket-balanced text. Each candidate
// builds on the previous one, which is why the order must not change:
// balancing assumes separators are already fixed.
func repairCandidates(text string) []string {
	var candidates []string

	payload := extractPayload(text)
	if payload != "" && payload != text {
		candidates = append(candidates, payload)
	}
	if payload == "" {
		payload = text
	}

	light := lightRepair(payload)
	candidates = append(candidates, light)

	positioned := repairAtPositions(light)
	if positioned != light {
		candidates = append(candidates, positioned)
	}

	balanced := removeTrailingCommas(balanceBrackets(positioned))
	if balanced != positioned {
		candidates = append(candidates, balanced)
	}

	return candidates
}

// finalForm is the fully repaired text after every strategy, used as Repair's
// best effort when nothing parses.
func finalForm(text string) string {
	payload := extractPayload(text)
	if payload == "" {
		payload = text
	}
	return removeTrailingCommas(balanceBrackets(repairAtPositions(lightRepair(payload))))
}

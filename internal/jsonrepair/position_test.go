package jsonrepair

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairAtPositions_MissingColon(t *testing.T) {
	fixed := repairAtPositions(`{"a" 1}`)
	assert.JSONEq(t, `{"a": 1}`, fixed)
}

func TestRepairAtPositions_MissingCommaBetweenPairs(t *testing.T) {
	fixed := repairAtPositions(`{"a": 1 "b": 2}`)
	assert.JSONEq(t, `{"a": 1, "b": 2}`, fixed)
}

func TestRepairAtPositions_MissingCommaInArray(t *testing.T) {
	fixed := repairAtPositions(`[1 2]`)
	assert.JSONEq(t, `[1, 2]`, fixed)
}

func TestRepairAtPositions_UnquotedValue(t *testing.T) {
	fixed := repairAtPositions(`{"name": React}`)
	assert.JSONEq(t, `{"name": "React"}`, fixed)
}

func TestRepairAtPositions_MultipleErrors(t *testing.T) {
	// Each pass fixes one character; several passes chain together.
	fixed := repairAtPositions(`{"a": 1 "b": 2 "c": 3}`)
	assert.JSONEq(t, `{"a": 1, "b": 2, "c": 3}`, fixed)
}

func TestRepairAtPositions_ValidUnchanged(t *testing.T) {
	input := `{"a": [1, 2]}`
	assert.Equal(t, input, repairAtPositions(input))
}

func TestRepairAtPositions_GivesUpWithoutProgress(t *testing.T) {
	// Truncated input has no single-character fix; the text must come back
	// unchanged rather than looping.
	input := `{"a": [1,`
	fixed := repairAtPositions(input)
	assert.Equal(t, input, fixed)
	assert.False(t, json.Valid([]byte(fixed)))
}

func TestQuoteBareWord_LeavesLiteralsAlone(t *testing.T) {
	for _, input := range []string{`[true]`, `[null]`, `[42]`} {
		assert.Equal(t, input, repairAtPositions(input), "input %q", input)
	}
}

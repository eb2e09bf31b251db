package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_NegativeColumnShortCircuits(t *testing.T) {
	assert.Equal(t, -100000, Score("whatever", -1, "FOO"))
}

func TestScore_DefineMacroBonus(t *testing.T) {
	line := "#define FOO 1"
	score := Score(line, 8, "FOO")
	assert.GreaterOrEqual(t, score, 125) // +100 define, +25 whitespace-before
}

func TestScore_DefineBonusRequiresExactColumn(t *testing.T) {
	line := "#define NOTFOO 1"
	// FOO occurs inside NOTFOO at column 11, not the macro name's own start.
	score := Score(line, 11, "FOO")
	assert.Less(t, score, 100)
}

func TestScore_FunctionCallShapeBonus(t *testing.T) {
	line := "int compute(int x) {"
	score := Score(line, 4, "compute")
	// +25 (whitespace before) +60 (paren follows) +30 (primitive return type)
	assert.GreaterOrEqual(t, score, 115)
}

func TestScore_SemicolonBonus(t *testing.T) {
	line := "int x = compute;"
	score := Score(line, 8, "compute")
	assert.GreaterOrEqual(t, score, 40)
}

func TestScore_ArrowPrefixBonus(t *testing.T) {
	line := "ptr->compute()"
	score := Score(line, 5, "compute")
	assert.GreaterOrEqual(t, score, 20+60)
}

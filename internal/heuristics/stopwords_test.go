package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStopWord_BuiltIn(t *testing.T) {
	assert.True(t, IsStopWord("int", nil))
	assert.True(t, IsStopWord("INT", nil))
	assert.True(t, IsStopWord("co_await", nil))
	assert.False(t, IsStopWord("compute", nil))
}

func TestIsStopWord_Empty(t *testing.T) {
	assert.True(t, IsStopWord("", nil))
}

func TestIsStopWord_ExtraSet(t *testing.T) {
	extra := map[string]struct{}{"module_export": {}}
	assert.True(t, IsStopWord("MODULE_EXPORT", extra))
	assert.False(t, IsStopWord("MODULE_EXPORT", nil))
}

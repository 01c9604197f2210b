package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAndHas(t *testing.T) {
	tr := New()
	tr.Add("TEACH")
	tr.Add("TEA")
	tr.Add("reach")

	assert.True(t, tr.Has("TEACH"))
	assert.True(t, tr.Has("TEA"))
	assert.True(t, tr.Has("REACH"), "Add normalizes to upper case")
	assert.True(t, tr.Has("teach"), "Has normalizes to upper case")

	assert.False(t, tr.Has("TEAC"), "prefix of a word is not a word")
	assert.False(t, tr.Has("TEACHER"))
	assert.False(t, tr.Has(""))
}

func TestHasPrefix(t *testing.T) {
	tr := New()
	tr.Add("TEACH")

	assert.True(t, tr.HasPrefix("T"))
	assert.True(t, tr.HasPrefix("TEAC"))
	assert.True(t, tr.HasPrefix("TEACH"))
	assert.False(t, tr.HasPrefix("TEACHX"))
	assert.False(t, tr.HasPrefix("R"))
}

func TestNonLetters(t *testing.T) {
	tr := New()
	tr.Add("CAT")
	assert.False(t, tr.Has("CA7"))
	assert.False(t, tr.HasPrefix("C-"))
}

package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar_NilArgs(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.Equal(t, StateReady, bar.State())
}

func TestBar_States(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetReady(3)
	assert.Equal(t, StateReady, bar.State())
	assert.Contains(t, bar.View(), "3 snippets")

	bar.SetReady(0)
	assert.Contains(t, bar.View(), "Ready")

	bar.SetLoading()
	assert.Equal(t, StateLoading, bar.State())
	assert.Contains(t, bar.View(), "Loading...")

	bar.SetError(errors.New("boom"))
	assert.Equal(t, StateError, bar.State())
	assert.Equal(t, "boom", bar.Message())
	assert.Contains(t, bar.View(), "Error: boom")

	bar.SetWarning("no snippets found")
	assert.Equal(t, StateWarning, bar.State())
	assert.Contains(t, bar.View(), "Warning - no snippets found")

	bar.SetReady(1)
	assert.Equal(t, "", bar.Message())
}

func TestBar_Hints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	assert.Contains(t, bar.View(), "/: search")

	bar.SetHints(HintsSnippet)
	assert.Contains(t, bar.View(), "esc: back")
	assert.NotContains(t, bar.View(), "/: search")

	bar.SetHints(HintsInput)
	assert.Contains(t, bar.View(), "enter: search")
}

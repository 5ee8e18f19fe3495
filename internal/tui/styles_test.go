package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStyles_Forced(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(NewRenderer(&buf, true))

	out := styles.Finding.Render("Line 3: bad")
	assert.Contains(t, out, "Line 3: bad")
	assert.Contains(t, out, "\x1b[", "forced renderer must emit ANSI sequences")
}

func TestNewStyles_NotForcedOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(NewRenderer(&buf, false))

	assert.Equal(t, "Line 3: bad", styles.Finding.Render("Line 3: bad"))
}

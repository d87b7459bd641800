package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderUtilizationBar(t *testing.T) {
	out := RenderUtilizationBar(50, 10)
	assert.Contains(t, out, " 50%")
	assert.Equal(t, 5, strings.Count(out, filledBlock))
	assert.Equal(t, 5, strings.Count(out, emptyBlock))
}

func TestRenderUtilizationBar_OverCapsFill(t *testing.T) {
	// The label keeps the real percentage, the fill stops at the bar edge.
	out := RenderUtilizationBar(130, 10)
	assert.Contains(t, out, "130%")
	assert.Equal(t, 10, strings.Count(out, filledBlock))
	assert.Equal(t, 0, strings.Count(out, emptyBlock))
}

func TestRenderUtilizationBar_NegativeClamps(t *testing.T) {
	out := RenderUtilizationBar(-5, 10)
	assert.Equal(t, 0, strings.Count(out, filledBlock))
}

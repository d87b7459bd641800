package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "HOURS"},
		[][]string{
			{"Ana Souza", "160h"},
			{"Carla Dias", "88h"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Ana Souza")
	assert.Contains(t, lines[3], "Carla Dias")
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

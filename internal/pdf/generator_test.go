package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlocks(t *testing.T) {
	text := "March 14, 2025\nHiring Manager\nOrbit\n\nDear Priya,\n\n• <b>First bullet</b>\n\n• <b>Second bullet</b>\n\nClosing line."

	blocks := Blocks(text)
	require.Len(t, blocks, 5)

	assert.False(t, blocks[0].Bullet)
	assert.Contains(t, string(blocks[0].HTML), "March 14, 2025<br/>Hiring Manager")

	assert.False(t, blocks[1].Bullet)
	assert.True(t, blocks[2].Bullet)
	assert.Equal(t, "<b>First bullet</b>", string(blocks[2].HTML))
	assert.True(t, blocks[3].Bullet)
	assert.False(t, blocks[4].Bullet)
}

func TestBlocksSkipsEmptyParagraphs(t *testing.T) {
	blocks := Blocks("one\n\n\n\ntwo")
	require.Len(t, blocks, 2)
}

func TestRenderHTML(t *testing.T) {
	letter := &Letter{
		Name:     "Harsha Jha",
		Headline: "Data Analyst",
		Blocks:   Blocks("Dear Hiring Manager,\n\n• <b>Point one</b>\n\nBest regards."),
	}

	html, err := RenderHTML(letter)
	require.NoError(t, err)

	assert.Contains(t, html, "Harsha Jha")
	assert.Contains(t, html, "Data Analyst")
	assert.Contains(t, html, "<li><b>Point one</b></li>")
	assert.Contains(t, html, "<p>Dear Hiring Manager,</p>")
}

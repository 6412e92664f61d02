package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 8")
	s.DrawTextColor(0, 1, "2048", core.ColorBrightMagenta)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Score: 8") {
		t.Errorf("line 0 = %q, want score text", lines[0])
	}
	if !strings.Contains(lines[1], "2048") {
		t.Errorf("line 1 = %q, want tile text", lines[1])
	}
}

func TestStyleForCoversPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorPurple; c++ {
		if _, ok := styleCache[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	// Unknown colors fall back instead of panicking.
	styleFor(core.Color(250)).Render("x")
}

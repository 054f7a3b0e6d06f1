package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/renderer"
)

func newTestRenderer(buf *bytes.Buffer) *TUIRenderer {
	t := NewWithWriter(buf)
	t.Init()
	return t
}

func TestRenderFrame_MapLines(t *testing.T) {
	gen := generator.New()
	gen.SetSeed(11)
	gen.Generate(15, 9, generator.DefaultConfig(), world.NewPositionSet())

	var buf bytes.Buffer
	newTestRenderer(&buf).RenderFrame(renderer.NewFrame(gen))

	lines := strings.Split(color.ClearCode(buf.String()), "\n")
	if len(lines) < 9 {
		t.Fatalf("got %d lines, want at least 9", len(lines))
	}
	for y := 0; y < 9; y++ {
		if got := len([]rune(lines[y])); got != 15*2 {
			t.Errorf("map line %d has %d runes, want %d", y, got, 15*2)
		}
	}
	if lines[0] != strings.Repeat(IconWall, 30) {
		t.Errorf("top border = %q, want all walls", lines[0])
	}
}

func TestRenderFrame_Warnings(t *testing.T) {
	gen := generator.New()
	gen.SetSeed(1)
	gen.Generate(10, 9, generator.DefaultConfig(), world.NewPositionSet())

	var buf bytes.Buffer
	newTestRenderer(&buf).RenderFrame(renderer.NewFrame(gen))

	out := color.ClearCode(buf.String())
	if !strings.Contains(out, "! Maze width 10 must be odd") {
		t.Errorf("output does not report the width fix:\n%s", out)
	}
}

func TestFormatText(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf)
	got := color.ClearCode(r.FormatText("ROOM{%d} and DOOR{x}", 3))
	if got != "3 and x" {
		t.Errorf("FormatText() = %q, want %q", got, "3 and x")
	}
	if got := r.FormatText("BAD{x}"); !strings.Contains(got, "function not found") {
		t.Errorf("FormatText(unknown) = %q", got)
	}
}

func TestShowMessage(t *testing.T) {
	var buf bytes.Buffer
	newTestRenderer(&buf).ShowMessage("hello")
	if buf.String() != "hello\n" {
		t.Errorf("ShowMessage wrote %q", buf.String())
	}
}

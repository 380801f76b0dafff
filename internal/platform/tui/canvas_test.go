package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

func TestCellCanvasScaling(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		scale      float64
		offX, offY int
	}{
		{"exact fit", 64, 24, 0.1, 0, 0},
		{"wide terminal", 100, 24, 0.1, 18, 0},
		{"tall terminal", 64, 40, 0.1, 0, 16},
		{"small", 32, 12, 0.05, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCellCanvas(640, 480, tc.cols, tc.rows)
			if c.scale != tc.scale || c.offX != tc.offX || c.offY != tc.offY {
				t.Errorf("scale=%v off=(%d,%d), expected %v (%d,%d)",
					c.scale, c.offX, c.offY, tc.scale, tc.offX, tc.offY)
			}
		})
	}
}

func TestCellCanvasFillKeepsBorder(t *testing.T) {
	c := NewCellCanvas(640, 480, 100, 24)
	c.Fill(core.ColorWhite)

	if got := c.Pixel(0, 0); got != core.ColorBlack {
		t.Errorf("border pixel = %s, expected black", got.Hex())
	}
	if got := c.Pixel(50, 20); got != core.ColorWhite {
		t.Errorf("canvas pixel = %s, expected white", got.Hex())
	}
}

func TestCellCanvasFillRect(t *testing.T) {
	c := NewCellCanvas(640, 480, 64, 24) // 10 logical units per pixel
	c.Fill(core.ColorBlack)
	c.FillRect(core.NewRect(100, 100, 50, 30), core.ColorRed)

	for py := 10; py < 13; py++ {
		for px := 10; px < 15; px++ {
			if got := c.Pixel(px, py); got != core.ColorRed {
				t.Errorf("pixel (%d,%d) = %s, expected red", px, py, got.Hex())
			}
		}
	}
	if c.Pixel(15, 10) != core.ColorBlack || c.Pixel(10, 13) != core.ColorBlack {
		t.Error("rect bled outside its bounds")
	}
}

func TestCellCanvasTinyShapeStillVisible(t *testing.T) {
	c := NewCellCanvas(640, 480, 32, 12) // 20 logical units per pixel
	c.Fill(core.ColorBlack)
	c.FillCircle(105, 105, 4, core.ColorYellow)

	if got := c.Pixel(5, 5); got != core.ColorYellow {
		t.Errorf("tiny circle not drawn, pixel = %s", got.Hex())
	}
}

func TestCellCanvasClipsOffscreen(t *testing.T) {
	c := NewCellCanvas(640, 480, 64, 24)
	c.Fill(core.ColorBlack)
	c.FillRect(core.NewRect(300, -28, 28, 28), core.ColorRed)

	for px := 0; px < 64; px++ {
		if c.Pixel(px, 0) == core.ColorRed {
			t.Fatal("object above the canvas should not be drawn")
		}
	}
}

func TestCellCanvasEllipse(t *testing.T) {
	c := NewCellCanvas(640, 480, 64, 24)
	c.Fill(core.ColorBlack)
	c.FillEllipse(core.NewRect(100, 100, 100, 100), core.ColorGreen)

	if c.Pixel(15, 15) != core.ColorGreen {
		t.Error("ellipse center should be filled")
	}
	if c.Pixel(10, 10) != core.ColorBlack {
		t.Error("bounding box corner should stay empty")
	}
}

func TestCellCanvasDim(t *testing.T) {
	c := NewCellCanvas(640, 480, 64, 24)
	c.Fill(core.ColorWhite)
	c.DrawText("hi", 0, 0, core.FontSmall, core.ColorWhite)
	c.Dim(core.ColorBlack, 0.5)

	if got := c.Pixel(1, 1); got != core.RGB(128, 128, 128) {
		t.Errorf("dimmed pixel = %s, expected #808080", got.Hex())
	}
	if got := c.texts[0].fg; got != core.RGB(128, 128, 128) {
		t.Errorf("dimmed text = %s, expected #808080", got.Hex())
	}
}

func TestCellCanvasFlush(t *testing.T) {
	c := NewCellCanvas(640, 480, 64, 24)
	c.Fill(core.ColorBlack)
	c.FillRect(core.NewRect(0, 0, 640, 10), core.ColorRed) // top pixel row only
	c.DrawTextCentered("Paused", 320, 220, core.FontLarge, core.ColorWhite)

	screen := core.NewScreen(1, 1)
	c.Flush(screen)

	if screen.Width() != 64 || screen.Height() != 24 {
		t.Fatalf("screen = %dx%d, expected 64x24", screen.Width(), screen.Height())
	}

	top := screen.GetCell(5, 0)
	if top.Rune != upperHalfBlock || top.Fg != core.ColorRed || top.Bg != core.ColorBlack {
		t.Errorf("split cell = %+v, expected red over black half block", top)
	}
	if got := screen.GetCell(5, 5); got.Rune != ' ' || got.Bg != core.ColorBlack {
		t.Errorf("uniform cell = %+v, expected blank", got)
	}

	// y=220 maps to pixel row 22, cell row 11; "Paused" starts at 32-3.
	if row := screen.Row(11); !strings.Contains(row, "Paused") || strings.Index(row, "Paused") != 29 {
		t.Errorf("row 11 = %q", row)
	}
	if !screen.GetCell(29, 11).Bold {
		t.Error("large text should be bold")
	}
}

func TestCellCanvasFillDropsText(t *testing.T) {
	c := NewCellCanvas(640, 480, 64, 24)
	c.DrawText("Score: 10", 10, 10, core.FontSmall, core.ColorBlack)
	c.Fill(core.ColorWhite)
	if len(c.texts) != 0 {
		t.Errorf("texts after fill = %d", len(c.texts))
	}
}

func TestRenderScreen(t *testing.T) {
	c := NewCellCanvas(640, 480, 64, 24)
	c.Fill(core.RGB(135, 206, 235))
	c.DrawText("Score: 42", 10, 10, core.FontSmall, core.ColorBlack)

	screen := core.NewScreen(0, 0)
	c.Flush(screen)

	out := RenderScreen(screen)
	plain := ansi.Strip(out)
	if plain != screen.String() {
		t.Errorf("stripped output differs from screen text")
	}
	if !strings.Contains(plain, "Score: 42") {
		t.Error("HUD text missing from render")
	}
	if got := strings.Count(out, "\n"); got != 23 {
		t.Errorf("line breaks = %d, expected 23", got)
	}
}

package raster

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/games/catcher"
)

func near(a, b core.Color) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2
}

func TestNewCanvasRejectsEmpty(t *testing.T) {
	if _, err := NewCanvas(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestFillAndShapes(t *testing.T) {
	c, err := NewCanvas(100, 80)
	if err != nil {
		t.Fatalf("NewCanvas failed: %v", err)
	}
	defer c.Close()

	c.Fill(core.ColorWhite)
	c.FillRect(core.NewRect(10, 10, 20, 20), core.ColorRed)
	c.FillCircle(70, 40, 10, core.ColorGreen)

	if got := c.At(20, 20); !near(got, core.ColorRed) {
		t.Errorf("rect pixel = %s, expected %s", got.Hex(), core.ColorRed.Hex())
	}
	if got := c.At(70, 40); !near(got, core.ColorGreen) {
		t.Errorf("circle pixel = %s, expected %s", got.Hex(), core.ColorGreen.Hex())
	}
	if got := c.At(90, 75); !near(got, core.ColorWhite) {
		t.Errorf("background pixel = %s, expected white", got.Hex())
	}
}

func TestDim(t *testing.T) {
	c, err := NewCanvas(10, 10)
	if err != nil {
		t.Fatalf("NewCanvas failed: %v", err)
	}
	defer c.Close()

	c.Fill(core.ColorWhite)
	c.Dim(core.ColorBlack, 0.5)

	got := c.At(5, 5)
	if got.R < 120 || got.R > 135 {
		t.Errorf("dimmed pixel = %s, expected mid gray", got.Hex())
	}
}

func TestRenderCatcherScene(t *testing.T) {
	g := catcher.NewWithConfig(config.DefaultCatcherConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.Clock = core.NewManualClock()
	g.Reset(cfg)

	c, err := Render(g, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	defer c.Close()

	w, h := c.Size()
	if w != 640 || h != 480 {
		t.Fatalf("size = %vx%v, expected 640x480", w, h)
	}
	sky := core.RGB(0x87, 0xce, 0xeb)
	if got := c.At(320, 200); !near(got, sky) {
		t.Errorf("sky pixel = %s, expected %s", got.Hex(), sky.Hex())
	}

	flash, err := Render(g, true)
	if err != nil {
		t.Fatalf("Render flash failed: %v", err)
	}
	defer flash.Close()
	if got := flash.At(320, 200); !near(got, core.RGB(255, 100, 100)) {
		t.Errorf("flash pixel = %s, expected #ff6464", got.Hex())
	}

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("png bounds = %v", b)
	}
}

func TestSaveSnapshot(t *testing.T) {
	g := catcher.NewWithConfig(config.DefaultCatcherConfig())
	cfg := core.DefaultConfig()
	cfg.Clock = core.NewManualClock()
	g.Reset(cfg)

	dir := filepath.Join(t.TempDir(), "shots")
	path := SnapshotPath(dir, g.ID(), time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC))
	if !strings.HasSuffix(path, "catcher_20240501_123000.png") {
		t.Errorf("path = %q", path)
	}

	if err := SaveSnapshot(g, path); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("snapshot is empty")
	}
}

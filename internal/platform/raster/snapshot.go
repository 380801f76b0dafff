package raster

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/registry"
)

// Render draws the current frame of game onto a fresh canvas.
// The flash overlay is drawn instead when flash is set and the game has one.
func Render(game registry.Game, flash bool) (*Canvas, error) {
	w, h := game.LogicalSize()
	c, err := NewCanvas(w, h)
	if err != nil {
		return nil, err
	}
	if f, ok := game.(registry.Flasher); ok && flash {
		f.RenderFlash(c)
		return c, nil
	}
	game.Render(c)
	return c, nil
}

// SaveSnapshot renders game and writes it to path.
func SaveSnapshot(game registry.Game, path string) error {
	c, err := Render(game, false)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.SavePNG(path)
}

// SnapshotPath returns a timestamped file name for game inside dir.
func SnapshotPath(dir, gameID string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", gameID, now.Format("20060102_150405")))
}

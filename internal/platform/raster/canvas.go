// Package raster renders games into images at their logical resolution.
// It backs screenshots and headless snapshots.
package raster

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func loadFonts() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Canvas is a core.Canvas backed by an anti-aliased raster context.
// One logical unit maps to one pixel.
type Canvas struct {
	dc    *gg.Context
	w, h  int
	small text.Face
	large text.Face
}

// NewCanvas creates a w x h raster canvas.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid canvas size %dx%d", w, h)
	}
	src, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("raster: cannot load font: %w", err)
	}
	return &Canvas{
		dc:    gg.NewContext(w, h),
		w:     w,
		h:     h,
		small: src.Face(core.FontSmall.Points()),
		large: src.Face(core.FontLarge.Points()),
	}, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.w), float64(c.h)
}

func (c *Canvas) setColor(col core.Color) {
	r, g, b, _ := col.RGBA()
	c.dc.SetRGB(r, g, b)
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col core.Color) {
	r, g, b, _ := col.RGBA()
	c.dc.ClearWithColor(gg.RGB(r, g, b))
}

// FillRect paints a filled rectangle.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	c.setColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	_ = c.dc.Fill()
}

// FillEllipse paints the ellipse inscribed in r.
func (c *Canvas) FillEllipse(r core.Rect, col core.Color) {
	cx, cy := r.Center()
	c.setColor(col)
	c.dc.DrawEllipse(cx, cy, r.W/2, r.H/2)
	_ = c.dc.Fill()
}

// FillCircle paints a filled circle.
func (c *Canvas) FillCircle(cx, cy, radius float64, col core.Color) {
	c.setColor(col)
	c.dc.DrawCircle(cx, cy, radius)
	_ = c.dc.Fill()
}

// Dim blends col over the canvas with the given opacity.
func (c *Canvas) Dim(col core.Color, alpha float64) {
	r, g, b, _ := col.RGBA()
	c.dc.SetRGBA(r, g, b, core.ClampF(alpha, 0, 1))
	c.dc.DrawRectangle(0, 0, float64(c.w), float64(c.h))
	_ = c.dc.Fill()
}

func (c *Canvas) face(size core.FontSize) text.Face {
	if size == core.FontLarge {
		return c.large
	}
	return c.small
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(s string, x, y float64, size core.FontSize, col core.Color) {
	face := c.face(size)
	c.dc.SetFont(face)
	c.setColor(col)
	c.dc.DrawString(s, x, y+face.Metrics().Ascent)
}

// DrawTextCentered draws text centered on (cx, cy).
func (c *Canvas) DrawTextCentered(s string, cx, cy float64, size core.FontSize, col core.Color) {
	face := c.face(size)
	c.dc.SetFont(face)
	c.setColor(col)
	w, h := c.dc.MeasureString(s)
	c.dc.DrawString(s, cx-w/2, cy-h/2+face.Metrics().Ascent)
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) core.Color {
	r, g, b, _ := c.dc.Image().At(x, y).RGBA()
	return core.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path, creating parent directories.
func (c *Canvas) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raster: create directory: %w", err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

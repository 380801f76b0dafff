package tui

import (
	"math"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

const upperHalfBlock = '▀'

// textRun is text placed on the cell grid.
type textRun struct {
	col, row int
	runes    []rune
	fg       core.Color
	bold     bool
}

// CellCanvas draws a logical canvas onto a terminal grid using half blocks.
//
// Every cell shows two vertically stacked pixels, so a cols x rows terminal
// gives a cols x 2*rows pixel grid. The logical canvas is scaled uniformly
// to fit and centered; the unused border stays black. Text is kept apart
// from the pixels and laid over them on Flush.
type CellCanvas struct {
	logicalW, logicalH float64
	cols, rows         int

	scale      float64 // pixels per logical unit
	offX, offY int     // top-left pixel of the scaled canvas

	pixels []core.Color // cols * rows*2, row-major
	texts  []textRun
}

// NewCellCanvas creates a canvas for a logical size on a terminal grid.
func NewCellCanvas(logicalW, logicalH, cols, rows int) *CellCanvas {
	c := &CellCanvas{logicalW: float64(logicalW), logicalH: float64(logicalH)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal grid and clears the canvas.
func (c *CellCanvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.pixels = make([]core.Color, c.cols*c.rows*2)
	c.texts = c.texts[:0]

	pw, ph := float64(c.cols), float64(c.rows*2)
	if c.logicalW <= 0 || c.logicalH <= 0 {
		c.scale = 0
		return
	}
	c.scale = math.Min(pw/c.logicalW, ph/c.logicalH)
	c.offX = int((pw - c.logicalW*c.scale) / 2)
	c.offY = int((ph - c.logicalH*c.scale) / 2)
}

// Grid returns the terminal grid size.
func (c *CellCanvas) Grid() (cols, rows int) {
	return c.cols, c.rows
}

// Size returns the logical canvas dimensions.
func (c *CellCanvas) Size() (w, h float64) {
	return c.logicalW, c.logicalH
}

// Pixel returns the color of a pixel on the half-block grid.
func (c *CellCanvas) Pixel(px, py int) core.Color {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows*2 {
		return core.ColorBlack
	}
	return c.pixels[py*c.cols+px]
}

func (c *CellCanvas) setPixel(px, py int, col core.Color) {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows*2 {
		return
	}
	c.pixels[py*c.cols+px] = col
}

// toPixel maps a logical point to pixel space (fractional).
func (c *CellCanvas) toPixel(x, y float64) (float64, float64) {
	return float64(c.offX) + x*c.scale, float64(c.offY) + y*c.scale
}

// Fill paints the scaled canvas area and drops any text.
func (c *CellCanvas) Fill(col core.Color) {
	c.FillRect(core.NewRect(0, 0, c.logicalW, c.logicalH), col)
	c.texts = c.texts[:0]
}

// FillRect paints every pixel whose center lies inside r, clipped to the
// logical canvas. A rect too small to cover any pixel center still marks
// the pixel under its center.
func (c *CellCanvas) FillRect(r core.Rect, col core.Color) {
	c.fillShape(r, col, func(float64, float64) bool { return true })
}

// FillEllipse paints the ellipse inscribed in r.
func (c *CellCanvas) FillEllipse(r core.Rect, col core.Color) {
	cx, cy := r.Center()
	rx, ry := r.W/2, r.H/2
	c.fillShape(r, col, func(x, y float64) bool {
		if rx <= 0 || ry <= 0 {
			return false
		}
		dx, dy := (x-cx)/rx, (y-cy)/ry
		return dx*dx+dy*dy <= 1
	})
}

// FillCircle paints a filled circle.
func (c *CellCanvas) FillCircle(cx, cy, radius float64, col core.Color) {
	c.FillEllipse(core.NewRect(cx-radius, cy-radius, radius*2, radius*2), col)
}

// fillShape paints pixels of r's bounding box whose centers satisfy inside.
// inside receives logical coordinates.
func (c *CellCanvas) fillShape(r core.Rect, col core.Color, inside func(x, y float64) bool) {
	if c.scale <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	clip := core.NewRect(
		math.Max(r.X, 0), math.Max(r.Y, 0),
		math.Min(r.Right(), c.logicalW)-math.Max(r.X, 0),
		math.Min(r.Bottom(), c.logicalH)-math.Max(r.Y, 0),
	)
	if clip.W <= 0 || clip.H <= 0 {
		return
	}

	x0, y0 := c.toPixel(clip.X, clip.Y)
	x1, y1 := c.toPixel(clip.Right(), clip.Bottom())

	painted := false
	for py := int(math.Floor(y0)); py < int(math.Ceil(y1)); py++ {
		for px := int(math.Floor(x0)); px < int(math.Ceil(x1)); px++ {
			lx := (float64(px) + 0.5 - float64(c.offX)) / c.scale
			ly := (float64(py) + 0.5 - float64(c.offY)) / c.scale
			if !clip.Contains(lx, ly) || !inside(lx, ly) {
				continue
			}
			c.setPixel(px, py, col)
			painted = true
		}
	}

	if !painted {
		cx, cy := clip.Center()
		px, py := c.toPixel(cx, cy)
		c.setPixel(int(px), int(py), col)
	}
}

// Dim blends col over every pixel and every piece of text drawn so far.
func (c *CellCanvas) Dim(col core.Color, alpha float64) {
	for i := range c.pixels {
		c.pixels[i] = c.pixels[i].Blend(col, alpha)
	}
	for i := range c.texts {
		c.texts[i].fg = c.texts[i].fg.Blend(col, alpha)
	}
}

// DrawText places text so that its line box starts at (x, y).
// The text lands on the cell row holding the vertical middle of the line.
func (c *CellCanvas) DrawText(s string, x, y float64, size core.FontSize, col core.Color) {
	px, py := c.toPixel(x, y+size.Points()/2)
	c.addText(s, int(px), int(py)/2, size, col)
}

// DrawTextCentered centers text on (cx, cy).
func (c *CellCanvas) DrawTextCentered(s string, cx, cy float64, size core.FontSize, col core.Color) {
	px, py := c.toPixel(cx, cy)
	n := len([]rune(s))
	c.addText(s, int(px)-n/2, int(py)/2, size, col)
}

func (c *CellCanvas) addText(s string, col, row int, size core.FontSize, fg core.Color) {
	if c.cols == 0 || c.rows == 0 {
		return
	}
	c.texts = append(c.texts, textRun{
		col:   col,
		row:   min(max(row, 0), c.rows-1),
		runes: []rune(s),
		fg:    fg,
		bold:  size == core.FontLarge,
	})
}

// Flush writes the frame into dst, resizing it to the grid if needed.
func (c *CellCanvas) Flush(dst *core.Screen) {
	if dst.Width() != c.cols || dst.Height() != c.rows {
		dst.Resize(c.cols, c.rows)
	}

	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pixels[(2*row)*c.cols+col]
			bottom := c.pixels[(2*row+1)*c.cols+col]
			if top == bottom {
				dst.SetCell(col, row, core.Cell{Rune: ' ', Fg: top, Bg: top})
				continue
			}
			dst.SetCell(col, row, core.Cell{Rune: upperHalfBlock, Fg: top, Bg: bottom})
		}
	}

	for _, t := range c.texts {
		for i, r := range t.runes {
			col := t.col + i
			if col < 0 || col >= c.cols {
				continue
			}
			bg := c.pixels[(2*t.row)*c.cols+col]
			dst.SetCell(col, t.row, core.Cell{Rune: r, Fg: t.fg, Bg: bg, Bold: t.bold})
		}
	}
}

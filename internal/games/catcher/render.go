package catcher

import (
	"fmt"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// Scene colors
var (
	colorSky      = core.RGB(135, 206, 235)
	colorGround   = core.RGB(34, 139, 34)
	colorFuse     = core.RGB(255, 120, 0)
	colorFlash    = core.RGB(255, 100, 100)
	colorGameOver = core.RGB(20, 20, 20)
)

const (
	groundHeight = 40
	pauseAlpha   = 120.0 / 255.0
	fuseRadius   = 4
	fuseOffset   = 6
)

// Render draws the frame for the current state. The game-over screen
// replaces gameplay, including on the frame that ended the game.
func (g *Game) Render(dst core.Canvas) {
	switch g.state {
	case StateGameOver, StateExited:
		g.renderGameOver(dst)
	case StatePaused:
		g.renderScene(dst)
		g.renderPause(dst)
	default:
		g.renderScene(dst)
	}
}

// RenderFlash draws the full-screen bomb warning.
func (g *Game) RenderFlash(dst core.Canvas) {
	dst.Fill(colorFlash)
}

func (g *Game) renderScene(dst core.Canvas) {
	w, h := g.size()

	dst.Fill(colorSky)
	dst.FillRect(core.NewRect(0, h-groundHeight, w, groundHeight), colorGround)
	dst.FillRect(g.player.Rect, core.ColorGray)

	for _, o := range g.objects {
		drawObject(dst, o)
	}

	g.renderHUD(dst)
}

func drawObject(dst core.Canvas, o FallingObject) {
	if o.Kind.IsFruit() {
		dst.FillEllipse(o.Rect, o.Kind.Color())
		return
	}
	cx, cy := o.Rect.Center()
	dst.FillCircle(cx, cy, o.Rect.W/2, core.ColorBlack)
	dst.FillCircle(cx, o.Rect.Y+fuseOffset, fuseRadius, colorFuse)
}

func (g *Game) renderHUD(dst core.Canvas) {
	w, h := g.size()
	secs := int(g.Elapsed().Seconds())

	dst.DrawText(fmt.Sprintf("Score: %d", g.score), 10, 10, core.FontSmall, core.ColorBlack)
	dst.DrawText(fmt.Sprintf("Lives: %d", g.lives), 10, 34, core.FontSmall, core.ColorBlack)
	dst.DrawText(fmt.Sprintf("Time: %ds", secs), w-120, 10, core.FontSmall, core.ColorBlack)
	dst.DrawText("P: Pause   Esc: Quit", w-200, h-30, core.FontSmall, core.ColorBlack)
}

func (g *Game) renderPause(dst core.Canvas) {
	w, h := g.size()

	dst.Dim(core.ColorBlack, pauseAlpha)
	dst.DrawTextCentered("Paused", w/2, h/2-20, core.FontLarge, core.ColorWhite)
	dst.DrawTextCentered(fmt.Sprintf("Score: %d    Lives: %d", g.score, g.lives), w/2, h/2+20, core.FontSmall, core.ColorWhite)
}

func (g *Game) renderGameOver(dst core.Canvas) {
	w, h := g.size()

	dst.Fill(colorGameOver)
	dst.DrawTextCentered("Game Over", w/2, h/2-30, core.FontLarge, core.ColorRed)
	dst.DrawTextCentered(fmt.Sprintf("Final Score: %d", g.score), w/2, h/2+10, core.FontSmall, core.ColorWhite)
	dst.DrawTextCentered("Press any key to exit...", w/2, h/2+50, core.FontSmall, core.ColorWhite)
}

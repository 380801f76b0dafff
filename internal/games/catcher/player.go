package catcher

import (
	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// Player is the paddle at the bottom of the canvas.
type Player struct {
	Rect  core.Rect
	Speed float64
}

// NewPlayer places the paddle with its bottom-center at
// (screenW/2, screenH-margin).
func NewPlayer(cfg config.PlayerConfig, screenW, screenH float64) Player {
	w, h := float64(cfg.Width), float64(cfg.Height)
	return Player{
		Rect:  core.NewRect(screenW/2-w/2, screenH-float64(cfg.BottomMargin)-h, w, h),
		Speed: cfg.Speed,
	}
}

// Update applies held movement and keeps the paddle inside [0, screenW].
// Both directions apply independently, so holding left and right cancels out.
func (p *Player) Update(in core.InputFrame, screenW float64) {
	if in.Pressed(core.ActionLeft) {
		p.Rect.X -= p.Speed
	}
	if in.Pressed(core.ActionRight) {
		p.Rect.X += p.Speed
	}
	p.Rect.X = core.ClampF(p.Rect.X, 0, screenW-p.Rect.W)
}

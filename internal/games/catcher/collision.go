package catcher

import (
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// resolveCollisions removes every object overlapping the paddle and applies
// its effect. Each object is consumed by its first hit.
func (g *Game) resolveCollisions() []core.Event {
	var events []core.Event
	kept := g.objects[:0]
	for _, o := range g.objects {
		if !o.Rect.Intersects(g.player.Rect) {
			kept = append(kept, o)
			continue
		}
		events = append(events, g.catch(o.Kind)...)
	}
	g.objects = kept
	return events
}

// catch applies the effect of catching one object of the given kind.
func (g *Game) catch(kind Kind) []core.Event {
	if !kind.IsFruit() {
		g.lives--
		return []core.Event{
			{Kind: core.EventLivesChanged, Value: float64(g.lives)},
			{Kind: core.EventFlash, Duration: time.Duration(g.cfg.Effects.FlashMS) * time.Millisecond},
		}
	}

	g.score += g.cfg.Rules.FruitPoints
	events := []core.Event{{Kind: core.EventScoreChanged, Value: float64(g.score)}}
	if g.difficulty.IsMilestone(g.score) {
		g.fallSpeed += g.difficulty.SpeedStep()
		events = append(events, core.Event{Kind: core.EventSpeedUp, Value: g.fallSpeed})
	}
	return events
}

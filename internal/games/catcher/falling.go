package catcher

import "github.com/vovakirdan/fruit-catcher/internal/core"

// Kind tags a falling object.
type Kind int

const (
	KindApple Kind = iota
	KindOrange
	KindBanana
	KindBomb
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindOrange:
		return "orange"
	case KindBanana:
		return "banana"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// IsFruit reports whether catching the object scores points.
func (k Kind) IsFruit() bool {
	return k != KindBomb
}

// Color returns the body color used to draw the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindApple:
		return core.ColorRed
	case KindOrange:
		return core.ColorOrange
	case KindBanana:
		return core.ColorYellow
	default:
		return core.ColorBlack
	}
}

// FallingObject is a fruit or bomb dropping toward the paddle.
// Speed is fixed when the object spawns.
type FallingObject struct {
	Kind  Kind
	Rect  core.Rect
	Speed float64
}

// Update moves the object down by its speed.
func (o *FallingObject) Update() {
	o.Rect.Y += o.Speed
}

// Gone reports whether the object's top edge has passed the bottom of the canvas.
func (o FallingObject) Gone(screenH float64) bool {
	return o.Rect.Y > screenH
}

// updateObjects advances every object and drops those that left the canvas,
// compacting the slice in place.
func updateObjects(objs []FallingObject, screenH float64) []FallingObject {
	kept := objs[:0]
	for _, o := range objs {
		o.Update()
		if !o.Gone(screenH) {
			kept = append(kept, o)
		}
	}
	return kept
}

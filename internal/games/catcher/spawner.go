package catcher

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
)

// weightedKind is one row of the cumulative spawn table.
type weightedKind struct {
	kind  Kind
	upper int // exclusive upper bound of the kind's slice of [0, total)
}

// Spawner decides when a new object appears and what it is.
type Spawner struct {
	table      []weightedKind
	total      int
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	lastSpawn  time.Duration
	screenW    int
	objW, objH int
}

// NewSpawner creates a spawner seeded for deterministic draws.
// now is the game start time; the first object appears once a full
// interval has passed.
func NewSpawner(seed int64, now time.Duration, screenW int, objects config.ObjectsConfig, diff *config.DifficultyManager) *Spawner {
	s := &Spawner{
		difficulty: diff,
		screenW:    screenW,
		objW:       objects.Width,
		objH:       objects.Height,
	}
	w := objects.Weights
	for _, row := range []struct {
		kind   Kind
		weight int
	}{
		{KindApple, w.Apple},
		{KindOrange, w.Orange},
		{KindBanana, w.Banana},
		{KindBomb, w.Bomb},
	} {
		if row.weight <= 0 {
			continue
		}
		s.total += row.weight
		s.table = append(s.table, weightedKind{kind: row.kind, upper: s.total})
	}
	s.Reset(seed, now)
	return s
}

// Reset reseeds the RNG and restarts the interval at now.
func (s *Spawner) Reset(seed int64, now time.Duration) {
	s.rng = rand.New(rand.NewSource(seed))
	s.lastSpawn = now
}

// Pick draws an object kind according to the weights.
func (s *Spawner) Pick() Kind {
	r := s.rng.Intn(s.total)
	for _, row := range s.table {
		if r < row.upper {
			return row.kind
		}
	}
	return s.table[len(s.table)-1].kind
}

// Update spawns an object if strictly more than the current interval has
// elapsed since the last spawn. The new object falls at speed.
func (s *Spawner) Update(now time.Duration, score int, speed float64) (FallingObject, bool) {
	if now-s.lastSpawn <= s.difficulty.SpawnInterval(score) {
		return FallingObject{}, false
	}
	s.lastSpawn = now

	kind := s.Pick()
	x := s.rng.Intn(s.screenW - s.objW + 1)
	return FallingObject{
		Kind:  kind,
		Rect:  core.NewRect(float64(x), -float64(s.objH), float64(s.objW), float64(s.objH)),
		Speed: speed,
	}, true
}

// LastSpawn returns the time of the most recent spawn.
func (s *Spawner) LastSpawn() time.Duration {
	return s.lastSpawn
}

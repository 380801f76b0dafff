package catcher

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
)

func newTestSpawner(seed int64) *Spawner {
	cfg := config.DefaultCatcherConfig()
	return NewSpawner(seed, 0, cfg.Screen.Width, cfg.Objects, config.NewDifficultyManager(cfg.Difficulty))
}

func TestSpawnerStrictInterval(t *testing.T) {
	tests := []struct {
		score    int
		interval time.Duration
	}{
		{0, 800 * time.Millisecond},
		{60, 500 * time.Millisecond},
		{200, 200 * time.Millisecond},
	}

	for _, tc := range tests {
		s := newTestSpawner(1)
		if _, ok := s.Update(tc.interval, tc.score, 3); ok {
			t.Errorf("score %d: spawned at exactly %v", tc.score, tc.interval)
		}
		if _, ok := s.Update(tc.interval+time.Millisecond, tc.score, 3); !ok {
			t.Errorf("score %d: no spawn after %v", tc.score, tc.interval+time.Millisecond)
		}
		if s.LastSpawn() != tc.interval+time.Millisecond {
			t.Errorf("score %d: last spawn = %v", tc.score, s.LastSpawn())
		}
		if _, ok := s.Update(tc.interval+2*time.Millisecond, tc.score, 3); ok {
			t.Errorf("score %d: spawned twice within one interval", tc.score)
		}
	}
}

func TestSpawnedObjectPlacement(t *testing.T) {
	s := newTestSpawner(99)
	now := time.Duration(0)

	for i := 0; i < 500; i++ {
		now += 801 * time.Millisecond
		obj, ok := s.Update(now, 0, 4.2)
		if !ok {
			t.Fatalf("spawn %d missing", i)
		}
		if obj.Rect.X < 0 || obj.Rect.X > 640-28 {
			t.Fatalf("x = %v out of [0, 612]", obj.Rect.X)
		}
		if obj.Rect.X != math.Trunc(obj.Rect.X) {
			t.Fatalf("x = %v should be a whole unit", obj.Rect.X)
		}
		if obj.Rect.Y != -28 || obj.Rect.W != 28 || obj.Rect.H != 28 {
			t.Fatalf("unexpected rect %+v", obj.Rect)
		}
		if obj.Speed != 4.2 {
			t.Fatalf("speed = %v, expected 4.2", obj.Speed)
		}
	}
}

func TestSpawnerWeights(t *testing.T) {
	s := newTestSpawner(2024)
	const draws = 100000

	counts := make(map[Kind]int)
	for i := 0; i < draws; i++ {
		counts[s.Pick()]++
	}

	expected := map[Kind]float64{
		KindApple:  0.35,
		KindOrange: 0.30,
		KindBanana: 0.20,
		KindBomb:   0.15,
	}
	for kind, want := range expected {
		got := float64(counts[kind]) / draws
		if math.Abs(got-want) > 0.01 {
			t.Errorf("%v frequency = %.3f, expected %.2f", kind, got, want)
		}
	}
}

func TestSpawnerSkipsZeroWeights(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Objects.Weights = config.WeightsConfig{Bomb: 1}
	s := NewSpawner(5, 0, cfg.Screen.Width, cfg.Objects, config.NewDifficultyManager(cfg.Difficulty))

	for i := 0; i < 100; i++ {
		if k := s.Pick(); k != KindBomb {
			t.Fatalf("picked %v with only bombs weighted", k)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a, b := newTestSpawner(11), newTestSpawner(11)
	for i := 1; i <= 50; i++ {
		now := time.Duration(i) * time.Second
		oa, _ := a.Update(now, i, 3)
		ob, _ := b.Update(now, i, 3)
		if oa != ob {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, oa, ob)
		}
	}

	a.Reset(11, 0)
	c := newTestSpawner(11)
	oa, _ := a.Update(time.Second, 0, 3)
	oc, _ := c.Update(time.Second, 0, 3)
	if oa != oc {
		t.Error("Reset should restart the random sequence")
	}
}

func TestKindHelpers(t *testing.T) {
	tests := []struct {
		kind  Kind
		name  string
		fruit bool
	}{
		{KindApple, "apple", true},
		{KindOrange, "orange", true},
		{KindBanana, "banana", true},
		{KindBomb, "bomb", false},
	}
	for _, tc := range tests {
		if tc.kind.String() != tc.name || tc.kind.IsFruit() != tc.fruit {
			t.Errorf("%d: String()=%q IsFruit()=%v", tc.kind, tc.kind.String(), tc.kind.IsFruit())
		}
	}
}

func TestUpdateObjectsCompactsInPlace(t *testing.T) {
	objs := []FallingObject{
		{Kind: KindApple, Rect: rectAt(480), Speed: 1},
		{Kind: KindOrange, Rect: rectAt(10), Speed: 1},
		{Kind: KindBomb, Rect: rectAt(479.5), Speed: 1},
		{Kind: KindBanana, Rect: rectAt(478), Speed: 2},
	}

	kept := updateObjects(objs, 480)

	if len(kept) != 2 {
		t.Fatalf("kept %d, expected 2", len(kept))
	}
	if kept[0].Kind != KindOrange || kept[0].Rect.Y != 11 {
		t.Errorf("kept[0] = %+v", kept[0])
	}
	if kept[1].Kind != KindBanana || kept[1].Rect.Y != 480 {
		t.Errorf("kept[1] = %+v", kept[1])
	}
	if &kept[0] != &objs[0] {
		t.Error("updateObjects should reuse the backing array")
	}
}

func rectAt(y float64) core.Rect {
	return core.NewRect(0, y, 28, 28)
}

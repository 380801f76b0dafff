package config

import "time"

// DifficultyManager derives the ramp parameters from the current score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SpawnInterval returns the minimum time between spawns at the given score:
// max(spawn_min, spawn_base - spawn_step*score).
func (d *DifficultyManager) SpawnInterval(score int) time.Duration {
	ms := d.cfg.SpawnBaseMS - d.cfg.SpawnStepMS*score
	if ms < d.cfg.SpawnMinMS {
		ms = d.cfg.SpawnMinMS
	}
	return time.Duration(ms) * time.Millisecond
}

// IsMilestone reports whether score lands exactly on a speed milestone.
//
// This is an exact modulo test, not a threshold crossing. It only fires for
// every milestone because catches add multiples of 10 starting from 0; with
// other point values some milestones would be skipped silently.
func (d *DifficultyManager) IsMilestone(score int) bool {
	if d.cfg.SpeedMilestone <= 0 || score <= 0 {
		return false
	}
	return score%d.cfg.SpeedMilestone == 0
}

// SpeedStep returns the fall speed added per milestone.
func (d *DifficultyManager) SpeedStep() float64 {
	return d.cfg.SpeedStep
}

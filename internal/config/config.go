// Package config provides YAML-based game configuration loading and
// difficulty presets for the rocket game.
package config

// RocketConfig contains every tuning constant of the simulation.
type RocketConfig struct {
	World    WorldConfig    `yaml:"world"`
	Ship     ShipConfig     `yaml:"ship"`
	Bullets  BulletConfig   `yaml:"bullets"`
	Meteors  MeteorConfig   `yaml:"meteors"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	NearMiss NearMissConfig `yaml:"near_miss"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// WorldConfig defines the toroidal play field in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Radius        float64 `yaml:"radius"`
	Lives         int     `yaml:"lives"`
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per second
	Thrust        float64 `yaml:"thrust"`         // acceleration, units/s^2
	Drag          float64 `yaml:"drag"`           // velocity factor per 1/60 s
	MuzzleOffset  float64 `yaml:"muzzle_offset"`  // bullet spawn distance beyond the hull
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Capacity int     `yaml:"capacity"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"` // seconds
	Radius   float64 `yaml:"radius"`
	Cooldown float64 `yaml:"cooldown"` // seconds between shots
}

// MeteorConfig defines meteor spawn ranges.
type MeteorConfig struct {
	Capacity  int     `yaml:"capacity"`
	SpawnPad  float64 `yaml:"spawn_pad"` // distance outside the edge
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// SpawnConfig defines the spawn governor.
type SpawnConfig struct {
	Interval float64 `yaml:"interval"` // seconds between spawn attempts
	Chance   float64 `yaml:"chance"`   // probability an attempt spawns
	MaxAlive int     `yaml:"max_alive"`
}

// NearMissConfig defines near-miss scoring and its floating marker.
type NearMissConfig struct {
	Radius         float64 `yaml:"radius"`
	Cooldown       float64 `yaml:"cooldown"`
	Points         int     `yaml:"points"`
	EffectCapacity int     `yaml:"effect_capacity"`
	EffectLifetime float64 `yaml:"effect_lifetime"`
	EffectRise     float64 `yaml:"effect_rise"` // units per second, upward
}

// ScoringConfig defines the score to credits conversion.
type ScoringConfig struct {
	CreditsConversionRate int `yaml:"credits_conversion_rate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

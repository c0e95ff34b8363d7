package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the built-in configuration.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		World: WorldConfig{
			Width:  960,
			Height: 640,
		},
		Ship: ShipConfig{
			Radius:        12,
			Lives:         3,
			RotationSpeed: 3.5,
			Thrust:        220,
			Drag:          0.98,
			MuzzleOffset:  6,
		},
		Bullets: BulletConfig{
			Capacity: 40,
			Speed:    420,
			Lifetime: 1.6,
			Radius:   2.5,
			Cooldown: 0.14,
		},
		Meteors: MeteorConfig{
			Capacity:  18,
			SpawnPad:  30,
			MinSpeed:  20,
			MaxSpeed:  120,
			MinRadius: 12,
			MaxRadius: 42,
		},
		Spawn: SpawnConfig{
			Interval: 0.6,
			Chance:   0.85,
			MaxAlive: 18,
		},
		NearMiss: NearMissConfig{
			Radius:         80,
			Cooldown:       1.0,
			Points:         10,
			EffectCapacity: 16,
			EffectLifetime: 1.5,
			EffectRise:     30,
		},
		Scoring: ScoringConfig{
			CreditsConversionRate: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRocketYAML
}

package config

// ApplyRocketPreset modifies the config based on a difficulty preset.
// Normal and the empty preset keep the loaded values.
func ApplyRocketPreset(cfg *RocketConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Spawn.Chance = 0.6
		cfg.Spawn.MaxAlive = min(12, cfg.Meteors.Capacity)
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Spawn.Chance = 1.0
		cfg.Spawn.Interval = 0.45
		cfg.Spawn.MaxAlive = cfg.Meteors.Capacity
	}
}

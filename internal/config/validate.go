package config

import (
	"errors"
	"fmt"
)

// Validate checks the constants once at startup. The simulation relies on
// these bounds and never re-checks them per frame.
func (c RocketConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: bounds must be positive, got %vx%v", c.World.Width, c.World.Height)

	check(c.Ship.Radius > 0, "ship.radius must be positive")
	check(c.Ship.Lives > 0, "ship.lives must be at least 1, got %d", c.Ship.Lives)
	check(c.Ship.Drag > 0 && c.Ship.Drag <= 1, "ship.drag must be in (0, 1], got %v", c.Ship.Drag)
	check(c.Ship.RotationSpeed >= 0 && c.Ship.Thrust >= 0, "ship: rotation_speed and thrust must not be negative")

	check(c.Bullets.Capacity > 0, "bullets.capacity must be positive")
	check(c.Bullets.Lifetime > 0, "bullets.lifetime must be positive")
	check(c.Bullets.Radius >= 0 && c.Bullets.Cooldown >= 0, "bullets: radius and cooldown must not be negative")

	check(c.Meteors.Capacity > 0, "meteors.capacity must be positive")
	check(c.Meteors.MinSpeed >= 0 && c.Meteors.MinSpeed <= c.Meteors.MaxSpeed,
		"meteors: speed range [%v, %v] is invalid", c.Meteors.MinSpeed, c.Meteors.MaxSpeed)
	check(c.Meteors.MinRadius > 0 && c.Meteors.MinRadius <= c.Meteors.MaxRadius,
		"meteors: radius range [%v, %v] is invalid", c.Meteors.MinRadius, c.Meteors.MaxRadius)

	check(c.Spawn.Interval > 0, "spawn.interval must be positive")
	check(c.Spawn.Chance >= 0 && c.Spawn.Chance <= 1, "spawn.chance must be in [0, 1], got %v", c.Spawn.Chance)
	check(c.Spawn.MaxAlive >= 0 && c.Spawn.MaxAlive <= c.Meteors.Capacity,
		"spawn.max_alive must be in [0, meteors.capacity], got %d", c.Spawn.MaxAlive)

	check(c.NearMiss.Radius >= 0 && c.NearMiss.Cooldown >= 0, "near_miss: radius and cooldown must not be negative")
	check(c.NearMiss.Points >= 0, "near_miss.points must not be negative")
	check(c.NearMiss.EffectCapacity > 0, "near_miss.effect_capacity must be positive")
	check(c.NearMiss.EffectLifetime > 0, "near_miss.effect_lifetime must be positive")

	check(c.Scoring.CreditsConversionRate > 0, "scoring.credits_conversion_rate must be positive")

	return errors.Join(errs...)
}

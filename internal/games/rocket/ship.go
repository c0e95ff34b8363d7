package rocket

import (
	"math"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

// HeadingUp is the starting heading; screen Y grows downward.
const HeadingUp = -math.Pi / 2

// Ship is the player-controlled entity. One instance lives for the whole
// session and is reset at the start of every run.
type Ship struct {
	Pos       core.Vec
	Vel       core.Vec
	Angle     float64 // heading in radians
	Alive     bool
	Lives     int
	Score     int
	Thrusting bool // display only

	cfg   config.ShipConfig
	space core.Space
}

// NewShip creates a ship parked at the center of space with full lives.
func NewShip(cfg config.ShipConfig, space core.Space) Ship {
	s := Ship{cfg: cfg, space: space}
	s.Reset()
	return s
}

// Reset reinitializes the ship for a new run.
func (s *Ship) Reset() {
	s.respawn()
	s.Alive = true
	s.Lives = s.cfg.Lives
	s.Score = 0
}

func (s *Ship) respawn() {
	s.Pos = s.space.Center()
	s.Vel = core.Vec{}
	s.Angle = HeadingUp
	s.Thrusting = false
}

// Heading returns the unit vector the nose points along.
func (s *Ship) Heading() core.Vec {
	return core.FromAngle(s.Angle)
}

// Radius returns the collision radius.
func (s *Ship) Radius() float64 {
	return s.cfg.Radius
}

// ApplyIntent applies this frame's steering. Left is applied before right,
// so holding both nets to zero. Thrust only lasts for the current frame.
func (s *Ship) ApplyIntent(rotateLeft, rotateRight, thrust bool, dt float64) {
	if rotateLeft {
		s.Angle -= s.cfg.RotationSpeed * dt
	}
	if rotateRight {
		s.Angle += s.cfg.RotationSpeed * dt
	}
	s.Thrusting = thrust
	if thrust {
		s.Vel = s.Vel.Add(s.Heading().Scale(s.cfg.Thrust * dt))
	}
}

// Integrate applies drag, moves the ship and wraps it into space.
// Drag is expressed per 1/60 s so it stays roughly frame-rate independent.
func (s *Ship) Integrate(dt float64) {
	s.Vel = s.Vel.Scale(math.Pow(s.cfg.Drag, dt*60))
	s.Pos = s.space.Wrap(s.Pos.Add(s.Vel.Scale(dt)))
}

// Muzzle returns the bullet spawn point and velocity for a shot.
func (s *Ship) Muzzle(bullets config.BulletConfig) (pos, vel core.Vec) {
	h := s.Heading()
	pos = s.space.Wrap(s.Pos.Add(h.Scale(s.cfg.Radius + s.cfg.MuzzleOffset)))
	vel = s.Vel.Add(h.Scale(bullets.Speed))
	return pos, vel
}

// TakeHit costs one life and puts the ship back at the center.
// Returns true when that was the last life.
func (s *Ship) TakeHit() bool {
	s.Lives--
	s.respawn()
	if s.Lives <= 0 {
		s.Lives = 0
		s.Alive = false
	}
	return !s.Alive
}

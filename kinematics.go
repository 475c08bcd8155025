package platformer

import "github.com/yohamta/donburi"

// Physics holds the per-tick constants of the kinematics stage, in level
// units per tick.
type Physics struct {
	Gravity     int
	MoveStep    int
	JumpImpulse int
	Scale       float64
}

// PhysicsFromConfig extracts the kinematic constants from cfg.
func PhysicsFromConfig(cfg Config) Physics {
	return Physics{
		Gravity:     cfg.Gravity,
		MoveStep:    cfg.MoveStep,
		JumpImpulse: cfg.JumpImpulse,
		Scale:       cfg.Scale,
	}
}

// Intent is the abstract input sampled once per tick.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
	// Pause is an edge signal: true only on the tick the key went down.
	Pause bool
}

// ApplyIntent updates the player's speeds and jump latch from in.
// Gravity is applied before jump arbitration, so a jump tick starts at
// exactly JumpImpulse.
func ApplyIntent(p *PlayerData, in Intent, phys Physics) {
	p.SpeedX = 0
	if in.Left {
		p.SpeedX -= phys.MoveStep
	}
	if in.Right {
		p.SpeedX += phys.MoveStep
	}

	p.SpeedY -= phys.Gravity

	if !in.Jump {
		p.CanJump = true
		return
	}
	if p.CanJump && p.JumpCount > 0 {
		p.SpeedY = phys.JumpImpulse
		p.CanJump = false
		// Leaving the ground is free; only mid-air jumps use the counter.
		if !p.OnGround {
			p.JumpCount--
		}
	}
}

// step moves t by speed level units, going through the unscaled integer
// position. It returns the unscaled position before the move.
func step(t *TransformData, speed Point, scale float64) Point {
	before := Point{X: unscale(t.Pos.X, scale), Y: unscale(t.Pos.Y, scale)}
	t.Pos.X = rescale(before.X+speed.X, scale)
	t.Pos.Y = rescale(before.Y+speed.Y, scale)
	return before
}

// TrackSpeed returns the speed of the first waypoint placed exactly at pos,
// or current when none matches.
func TrackSpeed(track []Waypoint, pos, current Point) Point {
	for _, wp := range track {
		if wp.Pos == pos {
			return wp.Speed
		}
	}
	return current
}

// moveMovables advances every movable by its track speed.
func moveMovables(w donburi.World, scale float64) {
	movableQuery.Each(w, func(entry *donburi.Entry) {
		m := MovableComponent.Get(entry)
		t := TransformComponent.Get(entry)
		pos := Point{X: unscale(t.Pos.X, scale), Y: unscale(t.Pos.Y, scale)}
		m.Speed = TrackSpeed(m.Track, pos, m.Speed)
		if m.Speed == (Point{}) {
			return
		}
		step(t, m.Speed, scale)
		reposition(w, entry)
	})
}

// movePlayer applies input and gravity to the player and moves it.
func movePlayer(w donburi.World, entry *donburi.Entry, in Intent, phys Physics) {
	p := PlayerComponent.Get(entry)
	t := TransformComponent.Get(entry)

	ApplyIntent(p, in, phys)
	p.LastPos = step(t, Point{X: p.SpeedX, Y: p.SpeedY}, phys.Scale)
}

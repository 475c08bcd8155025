package platformer

import "github.com/yohamta/donburi"

// Relations maps each object to the zone a rectangle occupies relative to it.
type Relations map[donburi.Entity]Zone

// Relate classifies r against every game object except skip.
func Relate(w donburi.World, r Rect, skip donburi.Entity) Relations {
	rel := make(Relations)
	objectQuery.Each(w, func(entry *donburi.Entry) {
		if entry.Entity() == skip {
			return
		}
		rel[entry.Entity()] = Classify(r, TransformComponent.Get(entry).Rect())
	})
	return rel
}

// Resolve snaps the player out of obstacle along the axis given by from, the
// zone the player occupied relative to obstacle before it moved. A vertical
// component wins over a horizontal one. Landing on top grounds the player
// and restores its mid-air jump. A Middle zone resolves nothing.
func Resolve(p *PlayerData, t *TransformData, from Zone, obstacle Rect) {
	dx, dy := from.Direction()
	ob := obstacle.Bounds()
	pb := t.Rect().Bounds()

	switch {
	case dy > 0:
		t.Pos.Y += ob.Top - pb.Bottom
		p.SpeedY = 0
		p.OnGround = true
		p.JumpCount = 1
	case dy < 0:
		t.Pos.Y += ob.Bottom - pb.Top
		p.SpeedY = 0
	case dx > 0:
		t.Pos.X += ob.Right - pb.Left
		p.SpeedX = 0
	case dx < 0:
		t.Pos.X += ob.Left - pb.Right
		p.SpeedX = 0
	}
}

// resolveCollisions pushes the player out of every collidable its moved box
// overlaps. The push direction comes from from, the relations of the player
// to every object taken at the start of the tick before anything moved. When
// several collidables overlap, the last one iterated wins on each axis.
func resolveCollisions(w donburi.World, player *donburi.Entry, from Relations) {
	p := PlayerComponent.Get(player)
	t := TransformComponent.Get(player)
	p.OnGround = false
	moved := t.Rect()

	collidableQuery.Each(w, func(entry *donburi.Entry) {
		if entry.Entity() == player.Entity() {
			return
		}
		obstacle := TransformComponent.Get(entry).Rect()
		if Classify(moved, obstacle) != ZoneMiddle {
			return
		}
		zone, ok := from[entry.Entity()]
		if !ok {
			return
		}
		Resolve(p, t, zone, obstacle)
	})
	reposition(w, player)
}

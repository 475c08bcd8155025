package platformer

import (
	"math"

	"github.com/yohamta/donburi"
)

// Follow returns the scroll offset that moves the map toward centering the
// player in the viewport. The current offset is the bottom-left corner of
// mapRect and player is in map-local coordinates. Alpha is the smoothing
// factor: 1 snaps, 0 never moves. The result is clamped after smoothing so
// the map never scrolls past its own edges. On an axis where the map is
// smaller than the viewport the map is centered instead.
func Follow(viewport, player, mapRect Rect, alpha float64) Vec2 {
	vb := viewport.Bounds()
	mb := mapRect.Bounds()
	vc := viewport.Center()
	pc := player.Center()

	target := Vec2{X: vc.X - pc.X, Y: vc.Y - pc.Y}
	offset := Vec2{X: mb.Left, Y: mb.Bottom}
	offset.X -= (offset.X - target.X) * alpha
	offset.Y -= (offset.Y - target.Y) * alpha

	offset.X = clampOffset(offset.X, vb.Width(), mb.Width())
	offset.Y = clampOffset(offset.Y, vb.Height(), mb.Height())
	return offset
}

// clampOffset restricts v to [view-size, 0].
func clampOffset(v, view, size float64) float64 {
	lo := view - size
	if lo > 0 {
		return lo / 2
	}
	return math.Max(lo, math.Min(v, 0))
}

// cameraAlpha returns the smoothing factor of the global camera entity, or
// fallback when no camera was spawned.
func cameraAlpha(w donburi.World, fallback float64) float64 {
	if entry, ok := cameraQuery.First(w); ok {
		return CameraComponent.Get(entry).Alpha
	}
	return fallback
}

// followCamera scrolls the map entity after the player.
func followCamera(w donburi.World, player *donburi.Entry, viewport Rect, alpha float64) {
	mapEntry, ok := mapQuery.First(w)
	if !ok {
		return
	}
	mt := TransformComponent.Get(mapEntry)
	pr := TransformComponent.Get(player).Rect()

	offset := Follow(viewport, pr, mt.Rect(), cameraAlpha(w, alpha))
	if offset == mt.Pos {
		return
	}
	mt.Pos = offset
	reposition(w, mapEntry)
}

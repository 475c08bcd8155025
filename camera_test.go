package platformer

import "testing"

var testViewport = bl(0, 0, 800, 600)

func TestFollowSnapsWithAlphaOne(t *testing.T) {
	mapRect := bl(0, 0, 2000, 1500)
	player := bl(995, 745, 10, 10) // center (1000, 750)
	got := Follow(testViewport, player, mapRect, 1)
	want := Vec2{X: -600, Y: -450}
	if got != want {
		t.Errorf("Follow = %+v, want %+v", got, want)
	}
}

func TestFollowSmoothing(t *testing.T) {
	mapRect := bl(0, 0, 2000, 1500)
	player := bl(695, 595, 10, 10) // target offset (-300, -300)
	got := Follow(testViewport, player, mapRect, 0.5)
	if !approxEqual(got.X, -150, epsilon) || !approxEqual(got.Y, -150, epsilon) {
		t.Errorf("Follow = %+v, want (-150, -150)", got)
	}

	// Alpha 0 never moves.
	still := Follow(testViewport, player, mapRect.At(-40, -20), 0)
	if still != (Vec2{X: -40, Y: -20}) {
		t.Errorf("alpha 0: Follow = %+v, want (-40, -20)", still)
	}
}

func TestFollowClampsToMapEdges(t *testing.T) {
	const mw, mh = 2000.0, 1500.0
	for _, alpha := range []float64{0.1, 0.3, 1} {
		offset := Vec2{}
		for px := -100.0; px <= mw+100; px += 137 {
			for py := -100.0; py <= mh+100; py += 211 {
				offset = Follow(testViewport, bl(px, py, 10, 10), bl(offset.X, offset.Y, mw, mh), alpha)
				if offset.X < 800-mw || offset.X > 0 {
					t.Fatalf("alpha %v: offset.X = %v outside [%v, 0]", alpha, offset.X, 800-mw)
				}
				if offset.Y < 600-mh || offset.Y > 0 {
					t.Fatalf("alpha %v: offset.Y = %v outside [%v, 0]", alpha, offset.Y, 600-mh)
				}
			}
		}
	}
}

func TestFollowCentersSmallMap(t *testing.T) {
	got := Follow(testViewport, bl(10, 10, 10, 10), bl(0, 0, 400, 300), 1)
	if got != (Vec2{X: 200, Y: 150}) {
		t.Errorf("Follow = %+v, want (200, 150)", got)
	}
}

func TestCameraStageMovesMap(t *testing.T) {
	m := testMap(900, 400)
	s := newTestSession(t, m)
	w := s.World

	entry, _ := playerQuery.First(w)
	followCamera(w, entry, s.viewport, 1)

	mapEntry, ok := mapQuery.First(w)
	if !ok {
		t.Fatal("no map entity")
	}
	pos := TransformComponent.Get(mapEntry).Pos
	// Map 1000x500 in a 1280x720 viewport is centered on both axes.
	if pos != (Vec2{X: 140, Y: 110}) {
		t.Errorf("map offset = %+v, want (140, 110)", pos)
	}
}

func TestCameraAlphaFromEntity(t *testing.T) {
	s := newTestSession(t, testMap(0, 0))
	if got := cameraAlpha(s.World, 0.3); got != 0.3 {
		t.Errorf("fallback alpha = %v, want 0.3", got)
	}
	entry := s.World.Entry(s.World.Create(CameraComponent))
	CameraComponent.SetValue(entry, CameraData{Alpha: 0.7})
	if got := cameraAlpha(s.World, 0.3); got != 0.7 {
		t.Errorf("alpha = %v, want 0.7", got)
	}
}

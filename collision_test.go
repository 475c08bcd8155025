package platformer

import "testing"

// --- Resolve ---

func TestResolveLandsOnTop(t *testing.T) {
	player := bl(0, 0, 10, 10)
	obstacle := bl(0, -5, 10, 10)
	if got := Classify(player, obstacle); got != ZoneMiddle {
		t.Fatalf("Classify = %v, want Middle", got)
	}

	p := PlayerData{SpeedY: -5}
	tr := TransformData{Pos: Vec2{X: 0, Y: 0}, Size: Vec2{X: 10, Y: 10}, Pivot: AnchorBottomLeft}
	Resolve(&p, &tr, ZoneTopMiddle, obstacle)

	if tr.Pos.Y != 5 {
		t.Errorf("Y = %v, want 5 (flush on top)", tr.Pos.Y)
	}
	if !p.OnGround || p.JumpCount != 1 || p.SpeedY != 0 {
		t.Errorf("OnGround = %v JumpCount = %d SpeedY = %d, want true 1 0", p.OnGround, p.JumpCount, p.SpeedY)
	}
}

func TestResolveAxes(t *testing.T) {
	obstacle := bl(0, 0, 10, 10)
	tests := []struct {
		name   string
		from   Zone
		start  Vec2
		want   Vec2
		ground bool
	}{
		{"from below", ZoneBottomMiddle, Vec2{X: 2, Y: -3}, Vec2{X: 2, Y: -5}, false},
		{"from right", ZoneMiddleRight, Vec2{X: 8, Y: 2}, Vec2{X: 10, Y: 2}, false},
		{"from left", ZoneMiddleLeft, Vec2{X: -3, Y: 2}, Vec2{X: -5, Y: 2}, false},
		{"diagonal prefers vertical", ZoneTopRight, Vec2{X: 8, Y: 8}, Vec2{X: 8, Y: 10}, true},
		{"middle does nothing", ZoneMiddle, Vec2{X: 2, Y: 2}, Vec2{X: 2, Y: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PlayerData
			tr := TransformData{Pos: tt.start, Size: Vec2{X: 5, Y: 5}, Pivot: AnchorBottomLeft}
			Resolve(&p, &tr, tt.from, obstacle)
			if tr.Pos != tt.want {
				t.Errorf("Pos = %+v, want %+v", tr.Pos, tt.want)
			}
			if p.OnGround != tt.ground {
				t.Errorf("OnGround = %v, want %v", p.OnGround, tt.ground)
			}
		})
	}
}

// --- Collision stage ---

func TestResolveCollisionsUsesStartOfTickRelations(t *testing.T) {
	m := testMap(0, 10) // player spans y 0..10
	m.Obstacles = []BoxSpawn{box("ground", 0, 5, 10, 10)} // spans y -5..5
	s := newTestSession(t, m)
	w := s.World

	entry, _ := playerQuery.First(w)
	p := PlayerComponent.Get(entry)
	pt := TransformComponent.Get(entry)
	p.JumpCount = 0
	from := Relate(w, pt.Rect().Translate(0, 5), entry.Entity())
	if z := from[mustFind(t, w, "ground").Entity()]; z != ZoneTopMiddle {
		t.Fatalf("relation to ground = %v, want TopMiddle", z)
	}

	resolveCollisions(w, entry, from)

	if pt.Pos.Y != 15 {
		t.Errorf("player top = %v, want 15", pt.Pos.Y)
	}
	if !p.OnGround || p.JumpCount != 1 {
		t.Errorf("OnGround = %v JumpCount = %d, want true 1", p.OnGround, p.JumpCount)
	}
}

func TestPlayerSettlesOnGround(t *testing.T) {
	m := testMap(10, 30)
	m.Obstacles = []BoxSpawn{box("ground", 0, 10, 100, 10)} // top edge at y 10
	s := newTestSession(t, m)

	for i := 0; i < 12; i++ {
		if _, err := s.Tick(Intent{}); err != nil {
			t.Fatal(err)
		}
	}
	p, pt := playerOf(t, s.World)
	if pt.Pos.Y != 20 {
		t.Errorf("player top = %v, want 20", pt.Pos.Y)
	}
	if !p.OnGround || p.JumpCount != 1 {
		t.Errorf("OnGround = %v JumpCount = %d, want true 1", p.OnGround, p.JumpCount)
	}
}

func TestWallStopsPlayer(t *testing.T) {
	m := testMap(10, 20)
	m.Obstacles = []BoxSpawn{
		box("ground", 0, 10, 200, 10),
		box("wall", 30, 60, 10, 50),
	}
	s := newTestSession(t, m)

	for i := 0; i < 20; i++ {
		if _, err := s.Tick(Intent{Right: true}); err != nil {
			t.Fatal(err)
		}
	}
	p, pt := playerOf(t, s.World)
	if pt.Pos.X != 20 {
		t.Errorf("player left = %v, want 20 (flush with wall)", pt.Pos.X)
	}
	if !p.OnGround {
		t.Error("player should still stand on the ground")
	}
}

func TestHeadBump(t *testing.T) {
	m := testMap(10, 20)
	m.Obstacles = []BoxSpawn{
		box("ground", 0, 10, 100, 10),
		box("ceiling", 0, 40, 100, 10), // bottom edge at y 30
	}
	s := newTestSession(t, m)
	s.Tick(Intent{})
	s.Tick(Intent{Jump: true})

	p, pt := playerOf(t, s.World)
	if pt.Pos.Y != 30 {
		t.Errorf("player top = %v, want 30 (under the ceiling)", pt.Pos.Y)
	}
	if p.SpeedY != 0 {
		t.Errorf("SpeedY = %d, want 0 after bump", p.SpeedY)
	}
}

func TestRisingElevatorCarriesPlayer(t *testing.T) {
	m := testMap(10, 30) // player spans y 20..30
	m.Elevators = []TrackSpawn{{
		Name:  "lift",
		Size:  [2]int{100, 10},
		Track: []TrackPoint{{Pos: [2]int{0, 20}, Speed: [2]int{0, 1}}},
	}}
	s := newTestSession(t, m)

	for i := 0; i < 10; i++ {
		if _, err := s.Tick(Intent{}); err != nil {
			t.Fatal(err)
		}
	}
	p, pt := playerOf(t, s.World)
	if pt.Pos.Y != 40 {
		t.Errorf("player top = %v, want 40", pt.Pos.Y)
	}
	if !p.OnGround {
		t.Error("player should stand on the lift")
	}
}

package platformer

import (
	"errors"
	"testing"
)

// --- Coins ---

func coinMap() *Map {
	m := testMap(0, 300)
	m.Coins = []BoxSpawn{
		box("coin-1", 100, 100, 10, 10),
		box("coin-2", 200, 100, 10, 10),
		box("coin-3", 300, 100, 10, 10),
	}
	return m
}

func TestCollectThreeCoins(t *testing.T) {
	s := newTestSession(t, coinMap())
	w := s.World
	player, _ := playerQuery.First(w)

	for i, x := range []int{100, 200, 300} {
		movePlayerTo(t, w, x+2, 102)
		if out := interact(w, w.Entry(player.Entity()), -100, 1); out != OutcomeNone {
			t.Fatalf("tick %d: outcome = %v, want None", i, out)
		}
	}
	if got := s.Score(); got != 3 {
		t.Errorf("score = %d, want 3", got)
	}
	if n := CountCategory(w, CategoryCoin); n != 0 {
		t.Errorf("%d coins left, want 0", n)
	}
}

func TestCoinPickupIdempotent(t *testing.T) {
	s := newTestSession(t, coinMap())
	w := s.World
	player, _ := playerQuery.First(w)

	movePlayerTo(t, w, 102, 102)
	for i := 0; i < 3; i++ {
		interact(w, w.Entry(player.Entity()), -100, 1)
	}
	if got := s.Score(); got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
}

func TestCoinsCollectedTogether(t *testing.T) {
	m := testMap(0, 300)
	m.Coins = []BoxSpawn{box("a", 100, 100, 4, 4), box("b", 104, 100, 4, 4)}
	s := newTestSession(t, m)
	log := recordScene(s.World)
	log.drain(s.World)

	player, _ := playerQuery.First(s.World)
	movePlayerTo(t, s.World, 100, 100)
	interact(s.World, player, -100, 1)

	if got := s.Score(); got != 2 {
		t.Errorf("score = %d, want 2", got)
	}
	var removes, texts int
	for _, c := range log.drain(s.World) {
		switch c.Op {
		case SceneRemove:
			removes++
		case SceneSetText:
			texts++
			if c.Text != "Score: 2" {
				t.Errorf("scoreboard text = %q, want %q", c.Text, "Score: 2")
			}
		}
	}
	if removes != 2 || texts != 1 {
		t.Errorf("removes = %d texts = %d, want 2 and 1", removes, texts)
	}
}

// --- Outcomes ---

func TestTargetAndMonsterOutcomes(t *testing.T) {
	m := testMap(0, 300)
	m.Targets = []BoxSpawn{box("flag", 100, 100, 10, 10)}
	m.Monsters = []TrackSpawn{{
		Name:  "slime",
		Size:  [2]int{10, 10},
		Track: []TrackPoint{{Pos: [2]int{200, 100}}},
	}}
	tests := []struct {
		name string
		x, y int
		want Outcome
	}{
		{"nothing", 0, 300, OutcomeNone},
		{"target", 102, 102, OutcomeWin},
		{"monster", 202, 102, OutcomeLose},
		{"touching edge only", 110, 100, OutcomeNone},
		{"below lower bound", 0, -101, OutcomeLose},
		{"at lower bound", 0, -100, OutcomeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, m)
			movePlayerTo(t, s.World, tt.x, tt.y)
			player, _ := playerQuery.First(s.World)
			if got := interact(s.World, player, -100, 1); got != tt.want {
				t.Errorf("outcome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetBeatsLowerBound(t *testing.T) {
	m := testMap(0, 300)
	m.Targets = []BoxSpawn{box("flag", 0, -120, 10, 10)}
	s := newTestSession(t, m)
	movePlayerTo(t, s.World, 2, -118)
	player, _ := playerQuery.First(s.World)
	if got := interact(s.World, player, -100, 1); got != OutcomeWin {
		t.Errorf("outcome = %v, want Win", got)
	}
}

// --- Interactable commands ---

func leverMap(commands map[string][]string) *Map {
	m := testMap(0, 300)
	lever := box("lever", 100, 100, 10, 10)
	lever.Commands = commands
	m.Switches = []BoxSpawn{lever}
	m.Obstacles = []BoxSpawn{box("door", 150, 150, 10, 50)}
	return m
}

func TestSwitchRunsCommandsOnTouch(t *testing.T) {
	s := newTestSession(t, leverMap(map[string][]string{
		"close": {"color 255 0 0", "remove door", "state open"},
		"open":  {"color 0 255 0"},
	}))
	w := s.World
	player, _ := playerQuery.First(w)
	movePlayerTo(t, w, 102, 102)
	interact(w, player, -100, 1)

	if _, ok := FindObject(w, "door"); ok {
		t.Error("door should be removed")
	}
	lever := mustFind(t, w, "lever")
	if st := InteractableComponent.Get(lever).State; st != "open" {
		t.Errorf("state = %q, want open", st)
	}
	if c := TransformComponent.Get(lever).Color; c != RGB(0, 255, 0) {
		t.Errorf("color = %+v, want green", c)
	}
}

func TestSwitchTouchIsEdgeTriggered(t *testing.T) {
	s := newTestSession(t, leverMap(map[string][]string{
		"close": {"color 255 0 0"},
	}))
	w := s.World
	log := recordScene(w)
	log.drain(w)
	lever := mustFind(t, w, "lever").Entity()
	player, _ := playerQuery.First(w)

	touch := func(x, y int) {
		movePlayerTo(t, w, x, y)
		interact(w, w.Entry(player.Entity()), -100, 1)
	}
	touch(102, 102)
	touch(103, 102)
	if n := countOps(log.drain(w), SceneRecolor, lever); n != 1 {
		t.Errorf("recolors while held = %d, want 1", n)
	}
	touch(0, 300)
	touch(102, 102)
	if n := countOps(log.drain(w), SceneRecolor, lever); n != 1 {
		t.Errorf("recolors after retouch = %d, want 1", n)
	}
}

func TestCommandNoOps(t *testing.T) {
	s := newTestSession(t, leverMap(map[string][]string{
		"close": {"remove ghost", "color 300 0 0", "color 1 2", "dance", "remove door"},
	}))
	w := s.World
	lever := mustFind(t, w, "lever")
	before := TransformComponent.Get(lever).Color

	if !Trigger(w, "lever") {
		t.Fatal("Trigger(lever) = false")
	}
	if _, ok := FindObject(w, "door"); ok {
		t.Error("door should be removed after bad commands")
	}
	if c := TransformComponent.Get(mustFind(t, w, "lever")).Color; c != before {
		t.Errorf("malformed color applied: %+v", c)
	}

	if !EnterState(w, "lever", "nope") {
		t.Fatal("EnterState(lever) = false")
	}
	if st := InteractableComponent.Get(mustFind(t, w, "lever")).State; st != DefaultInteractableState {
		t.Errorf("unknown state changed state to %q", st)
	}
	if Trigger(w, "door") || Trigger(w, "nobody") {
		t.Error("Trigger should fail for non-interactables")
	}
}

func TestStateChainIsBounded(t *testing.T) {
	s := newTestSession(t, leverMap(map[string][]string{
		"close": {"state a"},
		"a":     {"state b"},
		"b":     {"state a"},
	}))
	Trigger(s.World, "lever")
	st := InteractableComponent.Get(mustFind(t, s.World, "lever")).State
	if st != "a" {
		t.Errorf("state = %q, want a after %d hops", st, maxStateChain)
	}
}

func TestShowHide(t *testing.T) {
	s := newTestSession(t, leverMap(map[string][]string{
		"close": {"hide", "state open"},
		"open":  {},
	}))
	EnterState(s.World, "lever", "close")
	if TransformComponent.Get(mustFind(t, s.World, "lever")).Visible {
		t.Error("lever should be hidden")
	}
}

func TestRemovingPlayerAbortsTick(t *testing.T) {
	s := newTestSession(t, leverMap(map[string][]string{
		"close": {"remove player"},
	}))
	movePlayerTo(t, s.World, 102, 102)
	if _, err := s.Tick(Intent{}); !errors.Is(err, ErrNoPlayer) {
		t.Fatalf("Tick err = %v, want ErrNoPlayer", err)
	}
	if _, err := s.Tick(Intent{}); !errors.Is(err, ErrNoPlayer) {
		t.Fatalf("second Tick err = %v, want ErrNoPlayer", err)
	}
}

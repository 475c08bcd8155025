package platformer

import (
	"fmt"
	"math"
	"testing"

	"github.com/yohamta/donburi"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// box is a BoxSpawn shorthand for test maps.
func box(name string, x, y, w, h int) BoxSpawn {
	return BoxSpawn{Name: name, Pos: [2]int{x, y}, Size: [2]int{w, h}, Color: [3]uint8{255, 255, 255}}
}

// testMap returns a 1000x500 map with the player at (x, y), size 10x10.
func testMap(x, y int) *Map {
	return &Map{
		Size:   [2]int{1000, 500},
		Player: PlayerSpawn{Pos: [2]int{x, y}, Size: [2]int{10, 10}},
	}
}

func newTestSession(t *testing.T, m *Map) *Session {
	t.Helper()
	return NewSession(donburi.NewWorld(), DefaultConfig(), 1, m, 1)
}

func playerOf(t *testing.T, w donburi.World) (*PlayerData, *TransformData) {
	t.Helper()
	entry, ok := playerQuery.First(w)
	if !ok {
		t.Fatal("no player in world")
	}
	return PlayerComponent.Get(entry), TransformComponent.Get(entry)
}

func mustFind(t *testing.T, w donburi.World, name string) *donburi.Entry {
	t.Helper()
	entry, ok := FindObject(w, name)
	if !ok {
		t.Fatalf("object %q not found", name)
	}
	return entry
}

// movePlayerTo places the player's top-left corner at (x, y) level units.
func movePlayerTo(t *testing.T, w donburi.World, x, y int) {
	t.Helper()
	_, pt := playerOf(t, w)
	pt.Pos = Vec2{X: float64(x), Y: float64(y)}
}

// sceneLog records the scene commands published on a world.
type sceneLog struct {
	cmds []SceneCommand
}

func recordScene(w donburi.World) *sceneLog {
	l := &sceneLog{}
	SceneCommandEvent.Subscribe(w, func(_ donburi.World, c SceneCommand) {
		l.cmds = append(l.cmds, c)
	})
	return l
}

func (l *sceneLog) drain(w donburi.World) []SceneCommand {
	SceneCommandEvent.ProcessEvents(w)
	out := l.cmds
	l.cmds = nil
	return out
}

func countOps(cmds []SceneCommand, op SceneOp, e donburi.Entity) int {
	n := 0
	for _, c := range cmds {
		if c.Op == op && c.Entity == e {
			n++
		}
	}
	return n
}

// mapLoader serves maps from memory.
type mapLoader map[int]*Map

func (l mapLoader) Load(level int) (*Map, error) {
	m, ok := l[level]
	if !ok {
		return nil, fmt.Errorf("level %d: not found", level)
	}
	return m, nil
}

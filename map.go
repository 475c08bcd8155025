package platformer

import (
	"strings"

	"github.com/yohamta/donburi"
)

// Map is a parsed level description. It is immutable after load and only
// serves as the source of the initial spawns. Positions and sizes are in
// unscaled level units with the pivot at the top-left of each box.
type Map struct {
	Size         [2]int       `toml:"size" json:"size" jsonschema:"required,minItems=2,maxItems=2"`
	Player       PlayerSpawn  `toml:"player" json:"player" jsonschema:"required"`
	Targets      []BoxSpawn   `toml:"targets" json:"targets,omitempty"`
	Coins        []BoxSpawn   `toml:"coins" json:"coins,omitempty"`
	Switches     []BoxSpawn   `toml:"switches" json:"switches,omitempty"`
	Monsters     []TrackSpawn `toml:"monsters" json:"monsters,omitempty"`
	Elevators    []TrackSpawn `toml:"elevators" json:"elevators,omitempty"`
	Obstacles    []BoxSpawn   `toml:"obstacles" json:"obstacles,omitempty"`
	Descriptions []TextSpawn  `toml:"descriptions" json:"descriptions,omitempty"`
}

// PlayerSpawn places the single player of a level.
type PlayerSpawn struct {
	Pos   [2]int   `toml:"pos" json:"pos"`
	Size  [2]int   `toml:"size" json:"size"`
	Color [3]uint8 `toml:"color" json:"color"`
}

// BoxSpawn places a static named object. Commands maps interactable state
// names to command lines such as "color 255 0 0".
type BoxSpawn struct {
	Name     string              `toml:"name" json:"name" jsonschema:"required"`
	Pos      [2]int              `toml:"pos" json:"pos"`
	Size     [2]int              `toml:"size" json:"size"`
	Color    [3]uint8            `toml:"color" json:"color"`
	Commands map[string][]string `toml:"commands" json:"commands,omitempty"`
}

// TrackPoint is a waypoint in a level file.
type TrackPoint struct {
	Pos   [2]int `toml:"pos" json:"pos"`
	Speed [2]int `toml:"speed" json:"speed"`
}

// TrackSpawn places a movable object at the first point of its track.
type TrackSpawn struct {
	Name     string              `toml:"name" json:"name" jsonschema:"required"`
	Track    []TrackPoint        `toml:"track" json:"track" jsonschema:"minItems=1"`
	Size     [2]int              `toml:"size" json:"size"`
	Color    [3]uint8            `toml:"color" json:"color"`
	Commands map[string][]string `toml:"commands" json:"commands,omitempty"`
}

// TextSpawn places a block of descriptive text.
type TextSpawn struct {
	Name  string   `toml:"name" json:"name"`
	Pos   [2]int   `toml:"pos" json:"pos"`
	Size  [2]int   `toml:"size" json:"size"`
	Text  string   `toml:"text" json:"text"`
	Font  Font     `toml:"font" json:"font"`
	Color [3]uint8 `toml:"color" json:"color"`
}

// LevelLoader provides the map for a level number.
type LevelLoader interface {
	Load(level int) (*Map, error)
}

// Z-order of the spawned object categories.
const (
	zMap         = 0.0
	zObstacle    = 0.1
	zDescription = 0.11
	zTarget      = 0.2
	zElevator    = 0.3
	zSwitch      = 0.4
	zMonster     = 0.5
	zCoin        = 0.6
	zPlayer      = 0.7
)

// PlayerName is the object name of the spawned player.
const PlayerName = "player"

// ParseCommands tokenizes command lines, dropping blank ones.
func ParseCommands(src map[string][]string) map[string][]Command {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string][]Command, len(src))
	for state, lines := range src {
		cmds := make([]Command, 0, len(lines))
		for _, line := range lines {
			if fields := strings.Fields(line); len(fields) > 0 {
				cmds = append(cmds, Command(fields))
			}
		}
		out[state] = cmds
	}
	return out
}

func toColor(c [3]uint8) Color {
	return RGB(c[0], c[1], c[2])
}

// spawnMap instantiates every entity of m under a new map entity and returns
// the map entity. All entities are tagged with owner.
func spawnMap(w donburi.World, m *Map, level int, owner uint32, scale float64) *donburi.Entry {
	size := Vec2{X: rescale(m.Size[0], scale), Y: rescale(m.Size[1], scale)}
	mapEntry := spawn(w, entitySpec{
		name:  "map",
		kind:  NodeBox,
		owner: owner,
		transform: TransformData{
			Size:    size,
			Pivot:   AnchorBottomLeft,
			Z:       zMap,
			Color:   ColorBackground,
			Visible: true,
			Space:   SpaceScreen,
		},
	}, MapComponent)
	MapComponent.SetValue(mapEntry, MapData{Level: level, Size: size})
	parent := mapEntry.Entity()

	box := func(name string, pos Point, sz [2]int, color [3]uint8, z float64, extra ...donburi.IComponentType) *donburi.Entry {
		return spawn(w, entitySpec{
			name:  name,
			kind:  NodeBox,
			owner: owner,
			transform: TransformData{
				Pos:     Vec2{X: rescale(pos.X, scale), Y: rescale(pos.Y, scale)},
				Size:    Vec2{X: rescale(sz[0], scale), Y: rescale(sz[1], scale)},
				Pivot:   AnchorTopLeft,
				Z:       z,
				Color:   toColor(color),
				Visible: true,
				Parent:  parent,
			},
		}, append([]donburi.IComponentType{ObjectComponent}, extra...)...)
	}
	interactable := func(entry *donburi.Entry, name string, commands map[string][]string) {
		InteractableComponent.SetValue(entry, InteractableData{
			Name:     name,
			State:    DefaultInteractableState,
			Commands: ParseCommands(commands),
		})
	}

	p := m.Player
	player := box(PlayerName, Point{X: p.Pos[0], Y: p.Pos[1]}, p.Size, p.Color, zPlayer, PlayerComponent)
	ObjectComponent.SetValue(player, ObjectData{Name: PlayerName, Category: CategoryPlayer})
	PlayerComponent.SetValue(player, PlayerData{Name: PlayerName})

	for _, s := range m.Targets {
		e := box(s.Name, Point{X: s.Pos[0], Y: s.Pos[1]}, s.Size, s.Color, zTarget, InteractableComponent)
		ObjectComponent.SetValue(e, ObjectData{Name: s.Name, Category: CategoryTarget})
		interactable(e, s.Name, s.Commands)
	}
	for _, s := range m.Coins {
		e := box(s.Name, Point{X: s.Pos[0], Y: s.Pos[1]}, s.Size, s.Color, zCoin, InteractableComponent)
		ObjectComponent.SetValue(e, ObjectData{Name: s.Name, Category: CategoryCoin})
		interactable(e, s.Name, s.Commands)
	}
	for _, s := range m.Switches {
		e := box(s.Name, Point{X: s.Pos[0], Y: s.Pos[1]}, s.Size, s.Color, zSwitch, InteractableComponent)
		ObjectComponent.SetValue(e, ObjectData{Name: s.Name, Category: CategorySwitch})
		interactable(e, s.Name, s.Commands)
	}
	for _, s := range m.Monsters {
		e := box(s.Name, trackStart(s.Track), s.Size, s.Color, zMonster, MovableComponent, InteractableComponent)
		ObjectComponent.SetValue(e, ObjectData{Name: s.Name, Category: CategoryMonster})
		MovableComponent.SetValue(e, MovableData{Name: s.Name, Track: toWaypoints(s.Track)})
		interactable(e, s.Name, s.Commands)
	}
	for _, s := range m.Elevators {
		e := box(s.Name, trackStart(s.Track), s.Size, s.Color, zElevator, MovableComponent, CollidableComponent)
		ObjectComponent.SetValue(e, ObjectData{Name: s.Name, Category: CategoryElevator})
		MovableComponent.SetValue(e, MovableData{Name: s.Name, Track: toWaypoints(s.Track)})
		CollidableComponent.SetValue(e, CollidableData{Name: s.Name})
	}
	for _, s := range m.Obstacles {
		e := box(s.Name, Point{X: s.Pos[0], Y: s.Pos[1]}, s.Size, s.Color, zObstacle, CollidableComponent)
		ObjectComponent.SetValue(e, ObjectData{Name: s.Name, Category: CategoryObstacle})
		CollidableComponent.SetValue(e, CollidableData{Name: s.Name})
	}
	for _, d := range m.Descriptions {
		e := spawn(w, entitySpec{
			name:  d.Name,
			kind:  NodeText,
			owner: owner,
			transform: TransformData{
				Pos:     Vec2{X: rescale(d.Pos[0], scale), Y: rescale(d.Pos[1], scale)},
				Size:    Vec2{X: rescale(d.Size[0], scale), Y: rescale(d.Size[1], scale)},
				Pivot:   AnchorMiddle,
				Z:       zDescription,
				Visible: true,
				Parent:  parent,
			},
			text:      d.Text,
			font:      Font{Family: d.Font.Family, Size: int(float64(d.Font.Size) * scale)},
			textColor: toColor(d.Color),
		}, DescriptionComponent)
		DescriptionComponent.SetValue(e, DescriptionData{Text: d.Text, Font: d.Font, TextColor: toColor(d.Color)})
	}
	return mapEntry
}

func trackStart(track []TrackPoint) Point {
	if len(track) == 0 {
		return Point{}
	}
	return Point{X: track[0].Pos[0], Y: track[0].Pos[1]}
}

func toWaypoints(track []TrackPoint) []Waypoint {
	out := make([]Waypoint, len(track))
	for i, tp := range track {
		out[i] = Waypoint{
			Pos:   Point{X: tp.Pos[0], Y: tp.Pos[1]},
			Speed: Point{X: tp.Speed[0], Y: tp.Speed[1]},
		}
	}
	return out
}

package platformer

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Category identifies what kind of game object an entity is. It drives
// dispatch in the interaction stage.
type Category uint8

const (
	CategoryPlayer Category = iota
	CategoryTarget
	CategoryCoin
	CategorySwitch
	CategoryMonster
	CategoryElevator
	CategoryObstacle
)

var categoryNames = [...]string{"Player", "Target", "Coin", "Switch", "Monster", "Elevator", "Obstacle"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

// Space selects the frame a top-level entity is positioned in. Children of
// another entity are positioned relative to their parent.
type Space uint8

const (
	// SpaceScreen has its origin at the bottom-left of the viewport.
	SpaceScreen Space = iota
	// SpaceUI has its origin at the center of the viewport.
	SpaceUI
)

// TransformData is the render-facing placement of an entity.
type TransformData struct {
	Pos     Vec2
	Size    Vec2
	Pivot   Anchor
	Z       float64
	Color   Color
	Visible bool
	Space   Space
	Parent  donburi.Entity
}

// Rect returns the entity's box in its parent's frame.
func (t *TransformData) Rect() Rect {
	return Rect{X: t.Pos.X, Y: t.Pos.Y, Width: t.Size.X, Height: t.Size.Y, Pivot: t.Pivot}
}

// PlayerData is the controllable character's kinematic state.
type PlayerData struct {
	Name string

	// SpeedX and SpeedY are in level units per tick.
	SpeedX, SpeedY int

	// CanJump is true only while the jump key is released, so holding jump
	// launches once.
	CanJump  bool
	OnGround bool
	// JumpCount is the number of mid-air jumps left. Landing restores it to 1.
	JumpCount int

	// LastPos is the unscaled position before the most recent move.
	LastPos Point
}

// Waypoint is a track entry: when a movable stands exactly on Pos it adopts Speed.
type Waypoint struct {
	Pos   Point
	Speed Point
}

// MovableData drives monsters and elevators along a track.
type MovableData struct {
	Name  string
	Track []Waypoint
	Speed Point
}

// CollidableData marks an entity as a physical blocker.
type CollidableData struct {
	Name string
}

// Command is a tokenized interactable instruction such as
// ["color", "255", "0", "0"].
type Command []string

// DefaultInteractableState is the state every interactable starts in.
const DefaultInteractableState = "close"

// InteractableData is a scripted object with named states, each carrying
// the command list run when the state is entered or triggered.
type InteractableData struct {
	Name     string
	State    string
	Commands map[string][]Command

	// touching latches while the player overlaps the object so a touch
	// triggers once.
	touching bool
}

// ObjectData gives every spawned game entity its identity and category.
type ObjectData struct {
	Name     string
	Category Category
}

// MapData describes the level frame. Its entity's transform position is the
// current scroll offset.
type MapData struct {
	Level int
	Size  Vec2
}

// ScoreData is the per-session scoreboard.
type ScoreData struct {
	Score int
}

// CameraData configures the follow controller.
type CameraData struct {
	Alpha float64
}

// WidgetKind distinguishes the non-game entities of the menu screens.
type WidgetKind uint8

const (
	WidgetBackground WidgetKind = iota
	WidgetLabel
	WidgetButton
)

// Font names a font face by family file and pixel size.
type Font struct {
	Family string `toml:"family" json:"family"`
	Size   int    `toml:"size" json:"size"`
}

// WidgetData is a menu or overlay element. Buttons carry an Action that is
// reported back through Machine.HandleEvent when clicked.
type WidgetData struct {
	Kind      WidgetKind
	Action    string
	Text      string
	Font      Font
	TextColor Color
	Frame     Color
}

// DescriptionData is in-level text.
type DescriptionData struct {
	Text      string
	Font      Font
	TextColor Color
}

// OwnerData records which state spawned an entity. Owner 0 is global and
// survives state teardown.
type OwnerData struct {
	ID uint32
}

// Component types registered in the world.
var (
	TransformComponent    = donburi.NewComponentType[TransformData]()
	PlayerComponent       = donburi.NewComponentType[PlayerData]()
	MovableComponent      = donburi.NewComponentType[MovableData]()
	CollidableComponent   = donburi.NewComponentType[CollidableData]()
	InteractableComponent = donburi.NewComponentType[InteractableData]()
	ObjectComponent       = donburi.NewComponentType[ObjectData]()
	MapComponent          = donburi.NewComponentType[MapData]()
	ScoreComponent        = donburi.NewComponentType[ScoreData]()
	CameraComponent       = donburi.NewComponentType[CameraData]()
	WidgetComponent       = donburi.NewComponentType[WidgetData]()
	DescriptionComponent  = donburi.NewComponentType[DescriptionData]()
	OwnerComponent        = donburi.NewComponentType[OwnerData]()
)

// Queries used by the tick stages.
var (
	playerQuery     = donburi.NewQuery(filter.Contains(PlayerComponent, TransformComponent))
	movableQuery    = donburi.NewQuery(filter.Contains(MovableComponent, TransformComponent))
	collidableQuery = donburi.NewQuery(filter.Contains(CollidableComponent, TransformComponent))
	objectQuery     = donburi.NewQuery(filter.Contains(ObjectComponent, TransformComponent))
	mapQuery        = donburi.NewQuery(filter.Contains(MapComponent, TransformComponent))
	scoreQuery      = donburi.NewQuery(filter.Contains(ScoreComponent))
	cameraQuery     = donburi.NewQuery(filter.Contains(CameraComponent))
	buttonQuery     = donburi.NewQuery(filter.Contains(WidgetComponent, TransformComponent))
	ownedQuery      = donburi.NewQuery(filter.Contains(OwnerComponent))
)

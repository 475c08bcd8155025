package platformer

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneOp identifies a mutation the core asks the presentation layer to apply.
type SceneOp uint8

const (
	SceneSpawn SceneOp = iota
	SceneRemove
	SceneRecolor
	SceneReposition
	SceneSetVisible
	SceneSetText
)

var sceneOpNames = [...]string{"Spawn", "Remove", "Recolor", "Reposition", "SetVisible", "SetText"}

func (op SceneOp) String() string {
	if int(op) < len(sceneOpNames) {
		return sceneOpNames[op]
	}
	return "SceneOp(?)"
}

// NodeKind tells the renderer how to draw a spawned entity.
type NodeKind uint8

const (
	NodeBox    NodeKind = iota // solid rectangle
	NodeLabel                  // single line of text
	NodeButton                 // framed box with a centered label
	NodeText                   // wrapped text block
)

// SceneCommand carries one scene mutation. Spawn commands fill every field;
// the others only fill what changed.
type SceneCommand struct {
	Op      SceneOp
	Entity  donburi.Entity
	Parent  donburi.Entity
	Name    string
	Kind    NodeKind
	Space   Space
	Rect    Rect
	Z       float64
	Color   Color
	Visible bool

	Text      string
	Font      Font
	TextColor Color
	Frame     Color
}

// SceneCommandEvent is the donburi event the core publishes scene mutations on.
// Subscribe in the presentation layer and drain with ProcessEvents once per frame.
var SceneCommandEvent = events.NewEventType[SceneCommand]()

// entitySpec describes an entity to spawn along with its render-facing data.
type entitySpec struct {
	name      string
	kind      NodeKind
	owner     uint32
	transform TransformData
	text      string
	font      Font
	textColor Color
	frame     Color
}

// spawn creates an entity carrying a transform, an owner and the extra
// component types, then announces it to the scene. Callers fill the extra
// components on the returned entry.
func spawn(w donburi.World, spec entitySpec, extra ...donburi.IComponentType) *donburi.Entry {
	comps := append([]donburi.IComponentType{TransformComponent, OwnerComponent}, extra...)
	entry := w.Entry(w.Create(comps...))
	TransformComponent.SetValue(entry, spec.transform)
	OwnerComponent.SetValue(entry, OwnerData{ID: spec.owner})

	t := spec.transform
	SceneCommandEvent.Publish(w, SceneCommand{
		Op:        SceneSpawn,
		Entity:    entry.Entity(),
		Parent:    t.Parent,
		Name:      spec.name,
		Kind:      spec.kind,
		Space:     t.Space,
		Rect:      t.Rect(),
		Z:         t.Z,
		Color:     t.Color,
		Visible:   t.Visible,
		Text:      spec.text,
		Font:      spec.font,
		TextColor: spec.textColor,
		Frame:     spec.frame,
	})
	return entry
}

// removeEntity deletes e from the world and the scene. Removing an entity
// that no longer exists is a no-op and returns false.
func removeEntity(w donburi.World, e donburi.Entity) bool {
	if !w.Valid(e) {
		return false
	}
	SceneCommandEvent.Publish(w, SceneCommand{Op: SceneRemove, Entity: e})
	w.Remove(e)
	return true
}

// despawnOwned removes every entity spawned by owner. The owned set is
// collected before any removal.
func despawnOwned(w donburi.World, owner uint32) int {
	var doomed []donburi.Entity
	ownedQuery.Each(w, func(entry *donburi.Entry) {
		if OwnerComponent.Get(entry).ID == owner {
			doomed = append(doomed, entry.Entity())
		}
	})
	n := 0
	for _, e := range doomed {
		if removeEntity(w, e) {
			n++
		}
	}
	return n
}

// recolor updates an entity's color and tells the scene.
func recolor(w donburi.World, entry *donburi.Entry, c Color) {
	t := TransformComponent.Get(entry)
	t.Color = c
	SceneCommandEvent.Publish(w, SceneCommand{Op: SceneRecolor, Entity: entry.Entity(), Color: c})
}

// reposition tells the scene an entity's transform position changed.
func reposition(w donburi.World, entry *donburi.Entry) {
	t := TransformComponent.Get(entry)
	SceneCommandEvent.Publish(w, SceneCommand{
		Op:     SceneReposition,
		Entity: entry.Entity(),
		Rect:   t.Rect(),
	})
}

// setVisible toggles an entity's visibility.
func setVisible(w donburi.World, entry *donburi.Entry, visible bool) {
	t := TransformComponent.Get(entry)
	t.Visible = visible
	SceneCommandEvent.Publish(w, SceneCommand{Op: SceneSetVisible, Entity: entry.Entity(), Visible: visible})
}

// setText replaces the text of a label entity.
func setText(w donburi.World, entry *donburi.Entry, text string) {
	if entry.HasComponent(WidgetComponent) {
		WidgetComponent.Get(entry).Text = text
	}
	SceneCommandEvent.Publish(w, SceneCommand{Op: SceneSetText, Entity: entry.Entity(), Text: text})
}

// FindObject returns the first live game object with the given name.
func FindObject(w donburi.World, name string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	objectQuery.Each(w, func(entry *donburi.Entry) {
		if found == nil && ObjectComponent.Get(entry).Name == name {
			found = entry
		}
	})
	return found, found != nil
}

// CountCategory returns the number of live objects of category c.
func CountCategory(w donburi.World, c Category) int {
	n := 0
	objectQuery.Each(w, func(entry *donburi.Entry) {
		if ObjectComponent.Get(entry).Category == c {
			n++
		}
	})
	return n
}

// ButtonAt returns the action of the topmost visible button under (x, y),
// given in the UI frame (origin at the viewport center, y-up).
func ButtonAt(w donburi.World, x, y float64) (string, bool) {
	var (
		action string
		bestZ  float64
		found  bool
	)
	buttonQuery.Each(w, func(entry *donburi.Entry) {
		wd := WidgetComponent.Get(entry)
		t := TransformComponent.Get(entry)
		if wd.Kind != WidgetButton || !t.Visible || t.Space != SpaceUI {
			return
		}
		if !t.Rect().Contains(x, y) {
			return
		}
		if !found || t.Z > bestZ {
			action, bestZ, found = wd.Action, t.Z, true
		}
	})
	return action, found
}

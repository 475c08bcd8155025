package platformer

import (
	"fmt"
	"log"
	"strconv"

	"github.com/yohamta/donburi"
)

// Outcome is the result of a tick for the enclosing session.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win"
	case OutcomeLose:
		return "Lose"
	}
	return "None"
}

// maxStateChain bounds how many "state" hops one trigger may follow, so two
// states naming each other cannot loop forever.
const maxStateChain = 16

// mutation is a planned scene change from an interactable command list.
type mutation struct {
	op      SceneOp
	self    donburi.Entity
	target  string
	color   Color
	visible bool
}

// Trigger runs the command list of the named interactable's current state.
// It reports false when no such interactable exists.
func Trigger(w donburi.World, name string) bool {
	entry, ok := findInteractable(w, name)
	if !ok {
		return false
	}
	runState(w, entry, InteractableComponent.Get(entry).State)
	return true
}

// EnterState moves the named interactable into state and runs that state's
// commands. Entering the current state runs it again.
func EnterState(w donburi.World, name, state string) bool {
	entry, ok := findInteractable(w, name)
	if !ok {
		return false
	}
	runState(w, entry, state)
	return true
}

func findInteractable(w donburi.World, name string) (*donburi.Entry, bool) {
	entry, ok := FindObject(w, name)
	if !ok || !entry.HasComponent(InteractableComponent) {
		return nil, false
	}
	return entry, true
}

// runState executes the commands of state, following "state" transitions,
// and applies the resulting scene changes only after all lists have run.
// Unknown states are a no-op.
func runState(w donburi.World, entry *donburi.Entry, state string) {
	it := InteractableComponent.Get(entry)
	self := entry.Entity()

	var plan []mutation
	cur := state
	for hop := 0; hop < maxStateChain; hop++ {
		cmds, ok := it.Commands[cur]
		if !ok {
			break
		}
		it.State = cur

		next := ""
		for _, cmd := range cmds {
			if len(cmd) == 0 {
				continue
			}
			switch cmd[0] {
			case "state":
				if len(cmd) > 1 {
					next = cmd[1]
				}
			case "color":
				if c, err := parseColor(cmd[1:]); err == nil {
					plan = append(plan, mutation{op: SceneRecolor, self: self, color: c})
				} else if globalDebug {
					log.Printf("platformer: %s: %v", it.Name, err)
				}
			case "remove":
				if len(cmd) > 1 {
					plan = append(plan, mutation{op: SceneRemove, target: cmd[1]})
				}
			case "show", "hide":
				plan = append(plan, mutation{op: SceneSetVisible, self: self, visible: cmd[0] == "show"})
			default:
				if globalDebug {
					log.Printf("platformer: %s: unknown command %q", it.Name, cmd[0])
				}
			}
		}
		if next == "" {
			break
		}
		cur = next
	}
	applyMutations(w, plan)
}

func applyMutations(w donburi.World, plan []mutation) {
	for _, m := range plan {
		switch m.op {
		case SceneRemove:
			if target, ok := FindObject(w, m.target); ok {
				removeEntity(w, target.Entity())
			}
		case SceneRecolor:
			if w.Valid(m.self) {
				recolor(w, w.Entry(m.self), m.color)
			}
		case SceneSetVisible:
			if w.Valid(m.self) {
				setVisible(w, w.Entry(m.self), m.visible)
			}
		}
	}
}

// parseColor reads "r g b" in 0-255.
func parseColor(args []string) (Color, error) {
	if len(args) < 3 {
		return Color{}, fmt.Errorf("color needs 3 components, got %d", len(args))
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.Atoi(args[i])
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("bad color component %q", args[i])
		}
		rgb[i] = uint8(v)
	}
	return RGB(rgb[0], rgb[1], rgb[2]), nil
}

// interact settles the player's overlaps with targets, monsters, coins and
// switches, and checks the fall-out bound. Overlaps are found in one pass
// and acted on after it.
func interact(w donburi.World, player *donburi.Entry, lowerBound int, scale float64) Outcome {
	pt := TransformComponent.Get(player)
	pr := pt.Rect()
	fellOut := unscale(pt.Pos.Y, scale) < lowerBound

	outcome := OutcomeNone
	var coins []donburi.Entity
	var touched []donburi.Entity
	objectQuery.Each(w, func(entry *donburi.Entry) {
		if entry.Entity() == player.Entity() {
			return
		}
		obj := ObjectComponent.Get(entry)
		overlap := Overlaps(pr, TransformComponent.Get(entry).Rect())

		switch obj.Category {
		case CategoryTarget:
			if overlap && outcome == OutcomeNone {
				outcome = OutcomeWin
			}
		case CategoryMonster:
			if overlap && outcome == OutcomeNone {
				outcome = OutcomeLose
			}
		case CategoryCoin:
			if overlap {
				coins = append(coins, entry.Entity())
			}
		case CategorySwitch:
			if !entry.HasComponent(InteractableComponent) {
				return
			}
			it := InteractableComponent.Get(entry)
			if overlap && !it.touching {
				touched = append(touched, entry.Entity())
			}
			it.touching = overlap
		}
	})

	collected := 0
	for _, e := range coins {
		if removeEntity(w, e) {
			collected++
		}
	}
	if collected > 0 {
		AddScore(w, collected)
	}

	for _, e := range touched {
		if w.Valid(e) {
			entry := w.Entry(e)
			runState(w, entry, InteractableComponent.Get(entry).State)
		}
	}

	if outcome == OutcomeNone && fellOut {
		outcome = OutcomeLose
	}
	return outcome
}

// AddScore adds n to the session scoreboard and refreshes its label.
func AddScore(w donburi.World, n int) {
	entry, ok := scoreQuery.First(w)
	if !ok {
		return
	}
	s := ScoreComponent.Get(entry)
	s.Score += n
	if entry.HasComponent(WidgetComponent) {
		setText(w, entry, scoreText(s.Score))
	}
}

// CurrentScore returns the session score, or 0 without a scoreboard.
func CurrentScore(w donburi.World) int {
	entry, ok := scoreQuery.First(w)
	if !ok {
		return 0
	}
	return ScoreComponent.Get(entry).Score
}

func scoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

package platformer

import (
	"log"

	"github.com/yohamta/donburi"
)

// TransKind selects how the Machine changes its state stack.
type TransKind uint8

const (
	// TransNone keeps the current state.
	TransNone TransKind = iota
	// TransPush pauses the current state and starts a new one on top.
	TransPush
	// TransPop stops the current state and resumes the one below.
	TransPop
	// TransReplace stops the current state and starts a new one in its place.
	TransReplace
	// TransSwitch stops every state on the stack and starts a new one.
	TransSwitch
	// TransQuit stops every state and ends the machine.
	TransQuit
)

var transKindNames = [...]string{"None", "Push", "Pop", "Replace", "Switch", "Quit"}

func (k TransKind) String() string {
	if int(k) < len(transKindNames) {
		return transKindNames[k]
	}
	return "TransKind(?)"
}

// Trans is a requested state transition. State is only used by Push,
// Replace and Switch.
type Trans struct {
	Kind  TransKind
	State State
}

// Transition constructors.
func None() Trans { return Trans{} }
func Push(s State) Trans { return Trans{Kind: TransPush, State: s} }
func Pop() Trans { return Trans{Kind: TransPop} }
func Replace(s State) Trans { return Trans{Kind: TransReplace, State: s} }
func SwitchTo(s State) Trans { return Trans{Kind: TransSwitch, State: s} }
func Quit() Trans { return Trans{Kind: TransQuit} }

// EventKind distinguishes discrete UI events.
type EventKind uint8

const (
	// EventButton is a click on a button; Action holds the button's action.
	EventButton EventKind = iota
	// EventEscape is the pause/back key.
	EventEscape
)

// Event is a discrete UI event delivered through Machine.HandleEvent.
type Event struct {
	Kind   EventKind
	Action string
}

// Context is shared by every state of a Machine.
type Context struct {
	World  donburi.World
	Config Config
	Levels LevelLoader

	lastOwner uint32
}

// NewOwner allocates an owner id for a state's entities. Id 0 is reserved
// for global entities.
func (c *Context) NewOwner() uint32 {
	c.lastOwner++
	return c.lastOwner
}

// State is one screen of the game. OnStart and OnStop bracket its life on
// the stack; OnPause and OnResume bracket the time another state sits above
// it.
type State interface {
	OnStart(ctx *Context)
	OnStop(ctx *Context)
	OnPause(ctx *Context)
	OnResume(ctx *Context)
	HandleEvent(ctx *Context, ev Event) Trans
	Update(ctx *Context, in Intent) Trans
}

// BaseState provides no-op implementations of the State hooks.
type BaseState struct{}

func (BaseState) OnStart(*Context) {}
func (BaseState) OnStop(*Context) {}
func (BaseState) OnPause(*Context) {}
func (BaseState) OnResume(*Context) {}
func (BaseState) HandleEvent(*Context, Event) Trans { return None() }
func (BaseState) Update(*Context, Intent) Trans { return None() }

// Machine is a pushdown automaton of States. Only the top state receives
// updates and events.
type Machine struct {
	ctx     *Context
	stack   []State
	running bool
}

// NewMachine creates a stopped machine over w.
func NewMachine(w donburi.World, cfg Config, levels LevelLoader) *Machine {
	return &Machine{ctx: &Context{World: w, Config: cfg, Levels: levels}}
}

// Context returns the context handed to every state.
func (m *Machine) Context() *Context {
	return m.ctx
}

// Start pushes initial and starts it.
func (m *Machine) Start(initial State) {
	m.running = true
	m.push(initial)
}

// Running reports whether the machine still has a state to run.
func (m *Machine) Running() bool {
	return m.running
}

// Current returns the top state, or nil when the machine is stopped.
func (m *Machine) Current() State {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of states on the stack.
func (m *Machine) Depth() int {
	return len(m.stack)
}

// Update runs one tick of the top state and applies its transition.
func (m *Machine) Update(in Intent) {
	if s := m.Current(); m.running && s != nil {
		m.apply(s.Update(m.ctx, in))
	}
}

// HandleEvent delivers ev to the top state and applies its transition.
func (m *Machine) HandleEvent(ev Event) {
	if s := m.Current(); m.running && s != nil {
		m.apply(s.HandleEvent(m.ctx, ev))
	}
}

// Stop stops every state.
func (m *Machine) Stop() {
	m.apply(Quit())
}

func (m *Machine) apply(t Trans) {
	switch t.Kind {
	case TransNone:
	case TransPush:
		if s := m.Current(); s != nil {
			s.OnPause(m.ctx)
		}
		m.push(t.State)
	case TransPop:
		m.pop()
		if s := m.Current(); s != nil {
			s.OnResume(m.ctx)
		} else {
			m.running = false
		}
	case TransReplace:
		m.pop()
		m.push(t.State)
	case TransSwitch:
		m.popAll()
		m.push(t.State)
	case TransQuit:
		m.popAll()
		m.running = false
	default:
		log.Printf("platformer: unknown transition %v", t.Kind)
	}
}

func (m *Machine) push(s State) {
	if s == nil {
		log.Printf("platformer: transition to nil state ignored")
		return
	}
	m.stack = append(m.stack, s)
	s.OnStart(m.ctx)
}

func (m *Machine) pop() {
	n := len(m.stack)
	if n == 0 {
		return
	}
	s := m.stack[n-1]
	m.stack[n-1] = nil
	m.stack = m.stack[:n-1]
	s.OnStop(m.ctx)
}

func (m *Machine) popAll() {
	for len(m.stack) > 0 {
		m.pop()
	}
}

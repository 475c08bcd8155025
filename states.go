package platformer

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/yohamta/donburi"
)

// Button actions reported through EventButton.
const (
	ActionNewGame = "new-game"
	ActionExit    = "exit"
	ActionBack    = "back"
	ActionResume  = "resume"
	ActionReplay  = "replay"
	ActionMenu    = "menu"

	levelActionPrefix = "level:"
)

// LevelAction returns the action of the level-select button for level n.
func LevelAction(n int) string {
	return levelActionPrefix + strconv.Itoa(n)
}

// Fonts of the built-in screens.
var (
	titleFont  = Font{Family: "cambria.ttf", Size: 60}
	buttonFont = Font{Family: "merriweather.ttf", Size: 30}
	levelFont  = Font{Family: "merriweather-b.ttf", Size: 30}
)

// Z-order of UI layers.
const (
	zUIBackground = 0.0
	zUIWidget     = 1.0
	zOverlay      = 10.0
	zOverlayItem  = 11.0
)

// widgetSpec is a UI element in unscaled units, centered on pos in the UI
// frame.
type widgetSpec struct {
	name   string
	kind   WidgetKind
	action string
	text   string
	pos    Vec2
	size   Vec2
	z      float64
	font   Font
	color  Color
}

// spawnWidget creates a UI entity owned by owner.
func spawnWidget(ctx *Context, owner uint32, ws widgetSpec) *donburi.Entry {
	scale := ctx.Config.Scale
	font := ws.font
	font.Size = int(float64(font.Size) * scale)

	kind := NodeBox
	frame := Color{}
	switch ws.kind {
	case WidgetLabel:
		kind = NodeLabel
	case WidgetButton:
		kind = NodeButton
		frame = ColorGray2
	}
	entry := spawn(ctx.World, entitySpec{
		name:  ws.name,
		kind:  kind,
		owner: owner,
		transform: TransformData{
			Pos:     Vec2{X: ws.pos.X * scale, Y: ws.pos.Y * scale},
			Size:    Vec2{X: ws.size.X * scale, Y: ws.size.Y * scale},
			Pivot:   AnchorMiddle,
			Z:       ws.z,
			Color:   ws.color,
			Visible: true,
			Space:   SpaceUI,
		},
		text:      ws.text,
		font:      font,
		textColor: ColorBlack,
		frame:     frame,
	}, WidgetComponent)
	WidgetComponent.SetValue(entry, WidgetData{
		Kind:      ws.kind,
		Action:    ws.action,
		Text:      ws.text,
		Font:      font,
		TextColor: ColorBlack,
		Frame:     frame,
	})
	return entry
}

// spawnBackground covers the whole viewport with c.
func spawnBackground(ctx *Context, owner uint32, name string, c Color, z float64) {
	cfg := ctx.Config
	spawnWidget(ctx, owner, widgetSpec{
		name:  name,
		kind:  WidgetBackground,
		size:  Vec2{X: float64(cfg.Width) / cfg.Scale, Y: float64(cfg.Height) / cfg.Scale},
		z:     z,
		color: c,
	})
}

func spawnButton(ctx *Context, owner uint32, text, action string, x, y, w, h float64, font Font, z float64) {
	spawnWidget(ctx, owner, widgetSpec{
		name:   "button-" + action,
		kind:   WidgetButton,
		action: action,
		text:   text,
		pos:    Vec2{X: x, Y: y},
		size:   Vec2{X: w, Y: h},
		z:      z,
		font:   font,
		color:  ColorGray1,
	})
}

func spawnLabel(ctx *Context, owner uint32, name, text string, x, y, w, h float64, font Font, z float64) {
	spawnWidget(ctx, owner, widgetSpec{
		name: name,
		kind: WidgetLabel,
		text: text,
		pos:  Vec2{X: x, Y: y},
		size: Vec2{X: w, Y: h},
		z:    z,
		font: font,
	})
}

// --- Init ---

// InitState spawns the global camera and hands over to the main menu.
type InitState struct {
	BaseState
}

func (s *InitState) OnStart(ctx *Context) {
	if _, ok := cameraQuery.First(ctx.World); ok {
		return
	}
	entry := ctx.World.Entry(ctx.World.Create(CameraComponent, OwnerComponent))
	CameraComponent.SetValue(entry, CameraData{Alpha: ctx.Config.CameraAlpha})
}

func (s *InitState) Update(*Context, Intent) Trans {
	return Replace(&MenuState{})
}

// --- Menu ---

// MenuState is the title screen with New Game and Exit.
type MenuState struct {
	BaseState
	owner uint32
}

func (s *MenuState) OnStart(ctx *Context) {
	s.owner = ctx.NewOwner()
	spawnBackground(ctx, s.owner, "background", ColorBackground, zUIBackground)
	spawnLabel(ctx, s.owner, "title", ctx.Config.Title, 0, 200, 600, 150, titleFont, zUIWidget)
	spawnButton(ctx, s.owner, "New Game", ActionNewGame, 0, 0, 300, 60, buttonFont, zUIWidget)
	spawnButton(ctx, s.owner, "Exit", ActionExit, 0, -120, 300, 60, buttonFont, zUIWidget)
}

func (s *MenuState) OnStop(ctx *Context) {
	despawnOwned(ctx.World, s.owner)
}

func (s *MenuState) HandleEvent(_ *Context, ev Event) Trans {
	if ev.Kind != EventButton {
		return None()
	}
	switch ev.Action {
	case ActionNewGame:
		return Replace(&LevelSelectState{})
	case ActionExit:
		return Quit()
	}
	return None()
}

// --- Level select ---

// LevelSelectState shows a grid of level buttons, four per row, and Back.
type LevelSelectState struct {
	BaseState
	owner uint32
}

const levelColumns = 4

func (s *LevelSelectState) OnStart(ctx *Context) {
	s.owner = ctx.NewOwner()
	spawnBackground(ctx, s.owner, "background", ColorBackground, zUIBackground)
	spawnLabel(ctx, s.owner, "title", ctx.Config.Title, 0, 200, 600, 150, titleFont, zUIWidget)
	spawnButton(ctx, s.owner, "Back", ActionBack, 0, -200, 300, 60, buttonFont, zUIWidget)

	const dx, dy = 200.0, 160.0
	n := ctx.Config.Levels
	rows := (n + levelColumns - 1) / levelColumns
	for level := 1; level <= n; level++ {
		col := float64((level - 1) % levelColumns)
		row := float64((level - 1) / levelColumns)
		x := (col - float64(levelColumns-1)/2) * dx
		y := -(row - float64(rows-1)/2) * dy
		spawnButton(ctx, s.owner, strconv.Itoa(level), LevelAction(level), x, y, 70, 100, levelFont, zUIWidget)
	}
}

func (s *LevelSelectState) OnStop(ctx *Context) {
	despawnOwned(ctx.World, s.owner)
}

func (s *LevelSelectState) HandleEvent(ctx *Context, ev Event) Trans {
	switch {
	case ev.Kind == EventEscape:
		return Replace(&MenuState{})
	case ev.Action == ActionBack:
		return Replace(&MenuState{})
	case strings.HasPrefix(ev.Action, levelActionPrefix):
		level, err := strconv.Atoi(strings.TrimPrefix(ev.Action, levelActionPrefix))
		if err != nil {
			log.Printf("platformer: bad level action %q", ev.Action)
			return None()
		}
		m, err := loadLevel(ctx, level)
		if err != nil {
			log.Printf("platformer: %v", err)
			return None()
		}
		return Replace(&PlayingState{Level: level, Map: m})
	}
	return None()
}

func (s *LevelSelectState) Update(ctx *Context, in Intent) Trans {
	if in.Pause {
		return s.HandleEvent(ctx, Event{Kind: EventEscape})
	}
	return None()
}

func loadLevel(ctx *Context, level int) (*Map, error) {
	if level < 1 || level > ctx.Config.Levels {
		return nil, fmt.Errorf("platformer: level %d: %w", level, ErrUnknownLevel)
	}
	if ctx.Levels == nil {
		return nil, fmt.Errorf("platformer: level %d: no level loader", level)
	}
	m, err := ctx.Levels.Load(level)
	if err != nil {
		return nil, fmt.Errorf("platformer: load level %d: %w", level, err)
	}
	return m, nil
}

// --- Playing ---

// PlayingState runs a Session of one level. Pausing keeps the session and
// its scene alive underneath the pause overlay.
type PlayingState struct {
	BaseState
	Level int
	Map   *Map

	session *Session
	failing bool
}

// Session returns the running session, or nil before OnStart.
func (s *PlayingState) Session() *Session {
	return s.session
}

func (s *PlayingState) OnStart(ctx *Context) {
	s.session = NewSession(ctx.World, ctx.Config, s.Level, s.Map, ctx.NewOwner())
}

func (s *PlayingState) OnStop(*Context) {
	if s.session != nil {
		s.session.Close()
	}
}

func (s *PlayingState) HandleEvent(_ *Context, ev Event) Trans {
	if ev.Kind == EventEscape {
		return Push(s.paused(OutcomeNone))
	}
	return None()
}

func (s *PlayingState) Update(_ *Context, in Intent) Trans {
	if in.Pause {
		return Push(s.paused(OutcomeNone))
	}
	outcome, err := s.session.Tick(in)
	if err != nil {
		// Log the first failing tick only; the session stays paused in place
		// until a player exists again.
		if !s.failing {
			log.Printf("platformer: %v", err)
		}
		s.failing = true
		return None()
	}
	s.failing = false
	if outcome != OutcomeNone {
		return Push(s.paused(outcome))
	}
	return None()
}

func (s *PlayingState) paused(status Outcome) *PausedState {
	return &PausedState{Status: status, Level: s.Level, Map: s.Map, Score: s.session.Score()}
}

// --- Paused ---

// PausedState overlays the paused session. Status None offers Resume,
// Win and Lose offer Replay. Menu returns to the title screen.
type PausedState struct {
	BaseState
	Status Outcome
	Level  int
	Map    *Map
	Score  int

	owner uint32
}

func (s *PausedState) OnStart(ctx *Context) {
	s.owner = ctx.NewOwner()
	spawnBackground(ctx, s.owner, "overlay", ColorOverlay, zOverlay)

	title, action, button := "Paused", ActionResume, "Resume"
	switch s.Status {
	case OutcomeWin:
		title, action, button = "You Win!", ActionReplay, "Replay"
	case OutcomeLose:
		title, action, button = "You Lose!", ActionReplay, "Replay"
	}
	spawnLabel(ctx, s.owner, "overlay-title", title, 0, 150, 600, 150, titleFont, zOverlayItem)
	spawnLabel(ctx, s.owner, "overlay-score", scoreText(s.Score), 0, 40, 300, 60, buttonFont, zOverlayItem)
	spawnButton(ctx, s.owner, button, action, -170, -100, 300, 60, buttonFont, zOverlayItem)
	spawnButton(ctx, s.owner, "Menu", ActionMenu, 170, -100, 300, 60, buttonFont, zOverlayItem)
}

func (s *PausedState) OnStop(ctx *Context) {
	despawnOwned(ctx.World, s.owner)
}

func (s *PausedState) HandleEvent(_ *Context, ev Event) Trans {
	if ev.Kind == EventEscape {
		return s.escape()
	}
	switch ev.Action {
	case ActionResume:
		if s.Status == OutcomeNone {
			return Pop()
		}
	case ActionReplay:
		return SwitchTo(&PlayingState{Level: s.Level, Map: s.Map})
	case ActionMenu:
		return SwitchTo(&MenuState{})
	}
	return None()
}

func (s *PausedState) Update(_ *Context, in Intent) Trans {
	if in.Pause {
		return s.escape()
	}
	return None()
}

func (s *PausedState) escape() Trans {
	if s.Status == OutcomeNone {
		return Pop()
	}
	return None()
}

package platformer

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Z-order of the session HUD.
const zScoreboard = 5.0

// Session is one playthrough of a level: the spawned map, its player and the
// scoreboard. Everything it spawns is tagged with its owner id and removed by
// Close.
type Session struct {
	World donburi.World
	Level int

	cfg      Config
	phys     Physics
	viewport Rect
	owner    uint32

	ticks uint64
	debug bool
}

// NewSession spawns m and a fresh scoreboard into w.
func NewSession(w donburi.World, cfg Config, level int, m *Map, owner uint32) *Session {
	s := &Session{
		World:    w,
		Level:    level,
		cfg:      cfg,
		phys:     PhysicsFromConfig(cfg),
		viewport: cfg.Viewport(),
		owner:    owner,
		debug:    globalDebug,
	}
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	spawnMap(w, m, level, owner, cfg.Scale)
	s.spawnScoreboard()
	return s
}

func (s *Session) spawnScoreboard() {
	const margin = 20
	font := Font{Family: "merriweather.ttf", Size: int(30 * s.cfg.Scale)}
	entry := spawn(s.World, entitySpec{
		name:  "score",
		kind:  NodeLabel,
		owner: s.owner,
		transform: TransformData{
			Pos:     Vec2{X: -float64(s.cfg.Width)/2 + margin, Y: float64(s.cfg.Height)/2 - margin},
			Size:    Vec2{X: 300, Y: 60},
			Pivot:   AnchorTopLeft,
			Z:       zScoreboard,
			Visible: true,
			Space:   SpaceUI,
		},
		text:      scoreText(0),
		font:      font,
		textColor: ColorBlack,
	}, ScoreComponent, WidgetComponent)
	WidgetComponent.SetValue(entry, WidgetData{
		Kind:      WidgetLabel,
		Text:      scoreText(0),
		Font:      font,
		TextColor: ColorBlack,
	})
}

// Score returns the current score of the session.
func (s *Session) Score() int {
	return CurrentScore(s.World)
}

// Ticks returns the number of ticks run so far, including aborted ones.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Tick advances the simulation one step: movables, player kinematics,
// collision resolution, interaction and scoring, then camera follow.
// Without a player the tick is aborted before the first stage and the
// returned error wraps ErrNoPlayer.
func (s *Session) Tick(in Intent) (Outcome, error) {
	s.ticks++
	w := s.World

	player, ok := playerQuery.First(w)
	if !ok {
		return OutcomeNone, fmt.Errorf("platformer: level %d tick %d: %w", s.Level, s.ticks, ErrNoPlayer)
	}
	e := player.Entity()

	var stats tickStats
	lap := s.debugTimer()

	// Where the player stands relative to everything before this tick moves
	// anything decides the push-out axis of each collision.
	from := Relate(w, TransformComponent.Get(player).Rect(), e)

	moveMovables(w, s.phys.Scale)
	stats.movables = lap()

	movePlayer(w, w.Entry(e), in, s.phys)
	stats.player = lap()

	resolveCollisions(w, w.Entry(e), from)
	stats.collision = lap()

	outcome := interact(w, w.Entry(e), s.cfg.LowerBound, s.phys.Scale)
	stats.interaction = lap()

	// A remove command may have taken the player with it.
	if !w.Valid(e) {
		return outcome, fmt.Errorf("platformer: level %d tick %d: %w", s.Level, s.ticks, ErrNoPlayer)
	}
	followCamera(w, w.Entry(e), s.viewport, s.cfg.CameraAlpha)
	stats.camera = lap()

	s.debugLog(stats, outcome)
	return outcome, nil
}

// Close removes everything the session spawned.
func (s *Session) Close() {
	despawnOwned(s.World, s.owner)
}

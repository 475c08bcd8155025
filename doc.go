// Package platformer is the simulation core of a 2D side-scrolling
// platformer built on a [donburi] world.
//
// The core owns every game rule: kinematics, collision, interaction,
// scoring, camera follow and the screen state machine. It never draws.
// Presentation lives in the render package, which mirrors the world through
// [SceneCommandEvent].
//
// # Quick start
//
//	cfg, _ := platformer.LoadConfig("assets/config.toml")
//	m := platformer.NewMachine(donburi.NewWorld(), cfg, level.Dir(cfg.LevelsDir))
//	render.Run(m, &platformer.InitState{}, render.DefaultOptions(cfg), nil)
//
// # Coordinates
//
// The frame is y-up. A [Rect] stores the position of one of its nine
// anchors ([Anchor]); every comparison goes through [Rect.Bounds]. Level
// files use integer units that [Config].Scale converts to pixels. Objects
// of a level are positioned relative to the bottom-left corner of the map,
// whose own position is the scroll offset set by the camera.
//
// # Ticks
//
// [Session.Tick] runs one step of a level in a fixed order:
//
//  1. Movables (monsters and elevators) follow their tracks.
//  2. The player applies the [Intent], gravity and the jump rules.
//  3. Collisions against obstacles and elevators are resolved using each
//     collidable's [Zone] relative to the player at the start of the tick.
//  4. Interactions: targets win, monsters lose, coins score, switches run
//     their scripted commands. Falling below the lower bound loses.
//  5. The camera scrolls the map after the player.
//
// # States
//
// [Machine] is a pushdown automaton of [State] values: Init, Menu,
// LevelSelect, Playing and Paused. States exchange [Trans] values and
// spawn their entities under an owner id so that stopping a state removes
// exactly what it created.
//
// # Interactables
//
// Switches, coins, targets and monsters carry named states with command
// lists written in level files:
//
//	state <name>       enter another state and run its commands
//	color <r> <g> <b>  recolor this object
//	remove <name>      remove an object by name
//	show, hide         toggle this object's visibility
//
// Malformed commands are skipped. Call [Session.SetDebugMode] to have them
// reported along with per-tick stage timings.
//
// [donburi]: https://github.com/yohamta/donburi
package platformer

package platformer

import "errors"

var (
	// ErrNoPlayer is returned by Session.Tick when the world holds no player.
	// The tick is aborted before any stage runs.
	ErrNoPlayer = errors.New("platformer: no player in session")

	// ErrUnknownLevel is returned for a level number outside [1, Config.Levels].
	ErrUnknownLevel = errors.New("platformer: unknown level")
)

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/platformer"
)

// Key bindings of the movement intents.
var (
	keysLeft  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	keysJump  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
)

// pollIntent reads the keyboard. Movement keys are level-triggered; Escape
// is reported only on the frame it goes down.
func pollIntent() platformer.Intent {
	return platformer.Intent{
		Left:  anyPressed(keysLeft),
		Right: anyPressed(keysRight),
		Jump:  anyPressed(keysJump),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// pollClicks appends the release points of the mouse and of every touch
// that ended this frame, in screen pixels.
func (r *Renderer) pollClicks(buf [][2]int) [][2]int {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		buf = append(buf, [2]int{x, y})
	}
	r.touchIDs = inpututil.AppendJustReleasedTouchIDs(r.touchIDs[:0])
	for _, id := range r.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		buf = append(buf, [2]int{x, y})
	}
	return buf
}

// toUIFrame converts a screen pixel (origin top-left, y-down) to the UI
// frame (origin at the viewport center, y-up).
func toUIFrame(sx, sy int, vw, vh float64) (float64, float64) {
	return float64(sx) - vw/2, vh/2 - float64(sy)
}

package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade animates a node's Alpha. If the target node is disposed the fade
// stops immediately.
type fade struct {
	tween  *gween.Tween
	target *Node
	done   bool
}

// fadeIn starts n fully transparent and tweens it to opaque.
func fadeIn(n *Node, duration float32, fn ease.TweenFunc) *fade {
	n.Alpha = 0
	return &fade{tween: gween.New(0, 1, duration, fn), target: n}
}

// update advances the fade by dt seconds.
func (f *fade) update(dt float32) {
	if f.done {
		return
	}
	if f.target.IsDisposed() {
		f.done = true
		return
	}
	val, finished := f.tween.Update(dt)
	f.target.Alpha = float64(val)
	f.done = finished
}

// updateFades advances every fade and drops the finished ones.
func updateFades(fades []*fade, dt float32) []*fade {
	live := fades[:0]
	for _, f := range fades {
		f.update(dt)
		if !f.done {
			live = append(live, f)
		}
	}
	for i := len(live); i < len(fades); i++ {
		fades[i] = nil
	}
	return live
}

package platformer

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Named colors used by the built-in screens.
var (
	ColorWhite      = Color{1, 1, 1, 1}
	ColorBlack      = Color{0, 0, 0, 1}
	ColorBackground = RGB(60, 179, 113)
	ColorGray1      = RGB(224, 224, 224)
	ColorGray2      = RGB(192, 192, 192)
	ColorGray3      = RGB(128, 128, 128)
	ColorOverlay    = Color{0, 0, 0, 0.6}
)

// RGB converts an opaque 0-255 color triple (as stored in level files) to a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Point is an integer position in unscaled level units.
type Point struct {
	X, Y int
}

// Anchor selects the reference point of a rectangle that its stored position
// refers to. The coordinate frame is y-up: "top" has the larger Y.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopMiddle
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddle
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomMiddle
	AnchorBottomRight
)

// Rect is an axis-aligned box. (X, Y) is the position of the Pivot point of
// the box, so the same box can be described from any of its nine anchors.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Pivot         Anchor
}

// Bounds is a rectangle normalized to its edges in the y-up frame.
type Bounds struct {
	Left, Bottom, Right, Top float64
}

// Width returns Right - Left.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns Top - Bottom.
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// Bounds resolves the pivot and returns the box edges. Every geometric
// comparison between rectangles goes through this.
func (r Rect) Bounds() Bounds {
	var left, top float64
	switch r.Pivot {
	case AnchorTopLeft, AnchorMiddleLeft, AnchorBottomLeft:
		left = r.X
	case AnchorTopMiddle, AnchorMiddle, AnchorBottomMiddle:
		left = r.X - r.Width/2
	default:
		left = r.X - r.Width
	}
	switch r.Pivot {
	case AnchorTopLeft, AnchorTopMiddle, AnchorTopRight:
		top = r.Y
	case AnchorMiddleLeft, AnchorMiddle, AnchorMiddleRight:
		top = r.Y + r.Height/2
	default:
		top = r.Y + r.Height
	}
	return Bounds{Left: left, Bottom: top - r.Height, Right: left + r.Width, Top: top}
}

// Center returns the midpoint of the box.
func (r Rect) Center() Vec2 {
	b := r.Bounds()
	return Vec2{X: (b.Left + b.Right) / 2, Y: (b.Bottom + b.Top) / 2}
}

// At returns a copy of r whose pivot sits at (x, y).
func (r Rect) At(x, y float64) Rect {
	r.X, r.Y = x, y
	return r
}

// Translate returns a copy of r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether (x, y) lies strictly inside the box.
// Points on the edge are outside.
func (r Rect) Contains(x, y float64) bool {
	b := r.Bounds()
	return x > b.Left && x < b.Right && y > b.Bottom && y < b.Top
}

// unscale converts an on-screen coordinate to integer level units,
// truncating toward zero.
func unscale(v, scale float64) int {
	if scale == 0 {
		scale = 1
	}
	return int(math.Trunc(v / scale))
}

// rescale converts integer level units back to an on-screen coordinate.
func rescale(v int, scale float64) float64 {
	if scale == 0 {
		scale = 1
	}
	return float64(v) * scale
}

package platformer

// Zone is one of the nine regions a rectangle can occupy relative to another.
type Zone uint8

const (
	ZoneTopLeft Zone = iota
	ZoneTopMiddle
	ZoneTopRight
	ZoneMiddleLeft
	ZoneMiddle
	ZoneMiddleRight
	ZoneBottomLeft
	ZoneBottomMiddle
	ZoneBottomRight
)

var zoneNames = [...]string{
	"TopLeft", "TopMiddle", "TopRight",
	"MiddleLeft", "Middle", "MiddleRight",
	"BottomLeft", "BottomMiddle", "BottomRight",
}

func (z Zone) String() string {
	if int(z) < len(zoneNames) {
		return zoneNames[z]
	}
	return "Zone(?)"
}

// Direction returns the unit push-out direction of the zone in the y-up frame.
// Middle maps to (0, 0).
func (z Zone) Direction() (dx, dy int) {
	switch z {
	case ZoneTopLeft:
		return -1, 1
	case ZoneTopMiddle:
		return 0, 1
	case ZoneTopRight:
		return 1, 1
	case ZoneMiddleLeft:
		return -1, 0
	case ZoneMiddleRight:
		return 1, 0
	case ZoneBottomLeft:
		return -1, -1
	case ZoneBottomMiddle:
		return 0, -1
	case ZoneBottomRight:
		return 1, -1
	}
	return 0, 0
}

// Opposite returns the point reflection of z through the center.
func (z Zone) Opposite() Zone {
	return ZoneBottomRight - z
}

// Classify reports which zone a occupies relative to b. Corners are tested
// before edges so that a diagonal neighbour is never reported as a side
// neighbour. Touching edges count as outside; only a real overlap yields
// ZoneMiddle.
func Classify(a, b Rect) Zone {
	ab := a.Bounds()
	bb := b.Bounds()

	switch {
	case ab.Left >= bb.Right && ab.Bottom >= bb.Top:
		return ZoneTopRight
	case ab.Bottom >= bb.Top && ab.Right <= bb.Left:
		return ZoneTopLeft
	case ab.Top <= bb.Bottom && ab.Left >= bb.Right:
		return ZoneBottomRight
	case ab.Right <= bb.Left && ab.Top <= bb.Bottom:
		return ZoneBottomLeft
	case ab.Bottom >= bb.Top:
		return ZoneTopMiddle
	case ab.Top <= bb.Bottom:
		return ZoneBottomMiddle
	case ab.Left >= bb.Right:
		return ZoneMiddleRight
	case ab.Right <= bb.Left:
		return ZoneMiddleLeft
	}
	return ZoneMiddle
}

// Overlaps reports whether a and b share interior area.
func Overlaps(a, b Rect) bool {
	return Classify(a, b) == ZoneMiddle
}

package platformer

import "testing"

func bl(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h, Pivot: AnchorBottomLeft}
}

// --- Bounds ---

func TestRectBoundsPivots(t *testing.T) {
	want := Bounds{Left: 0, Bottom: 0, Right: 10, Top: 20}
	tests := []struct {
		pivot Anchor
		x, y  float64
	}{
		{AnchorTopLeft, 0, 20},
		{AnchorTopMiddle, 5, 20},
		{AnchorTopRight, 10, 20},
		{AnchorMiddleLeft, 0, 10},
		{AnchorMiddle, 5, 10},
		{AnchorMiddleRight, 10, 10},
		{AnchorBottomLeft, 0, 0},
		{AnchorBottomMiddle, 5, 0},
		{AnchorBottomRight, 10, 0},
	}
	for _, tt := range tests {
		r := Rect{X: tt.x, Y: tt.y, Width: 10, Height: 20, Pivot: tt.pivot}
		if got := r.Bounds(); got != want {
			t.Errorf("pivot %d: Bounds() = %+v, want %+v", tt.pivot, got, want)
		}
	}
}

func TestRectContainsExcludesEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 300, Height: 60, Pivot: AnchorMiddle}
	if !r.Contains(0, 0) {
		t.Error("center should be inside")
	}
	if r.Contains(150, 0) {
		t.Error("right edge should be outside")
	}
	if r.Contains(0, -30) {
		t.Error("bottom edge should be outside")
	}
}

func TestUnscaleTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		v, scale float64
		want     int
	}{
		{5, 2, 2},
		{-5, 2, -2},
		{4, 1, 4},
		{7, 0, 7},
	}
	for _, tt := range tests {
		if got := unscale(tt.v, tt.scale); got != tt.want {
			t.Errorf("unscale(%v, %v) = %d, want %d", tt.v, tt.scale, got, tt.want)
		}
	}
}

// --- Classify ---

func TestClassifyNeighbours(t *testing.T) {
	b := bl(0, 0, 10, 10)
	tests := []struct {
		name string
		a    Rect
		want Zone
	}{
		{"top right", bl(10, 10, 5, 5), ZoneTopRight},
		{"top left", bl(-5, 10, 5, 5), ZoneTopLeft},
		{"bottom right", bl(10, -5, 5, 5), ZoneBottomRight},
		{"bottom left", bl(-5, -5, 5, 5), ZoneBottomLeft},
		{"top middle", bl(2, 10, 5, 5), ZoneTopMiddle},
		{"bottom middle", bl(2, -5, 5, 5), ZoneBottomMiddle},
		{"middle right", bl(10, 2, 5, 5), ZoneMiddleRight},
		{"middle left", bl(-5, 2, 5, 5), ZoneMiddleLeft},
		{"overlap", bl(2, 2, 5, 5), ZoneMiddle},
		{"contains", bl(-5, -5, 20, 20), ZoneMiddle},
		{"spanning top edge", bl(-5, 8, 20, 5), ZoneMiddle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.a, b); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyCornersBeatEdges(t *testing.T) {
	// Diagonally past the corner with both axes strictly separated.
	if got := Classify(bl(12, 15, 5, 5), bl(0, 0, 10, 10)); got != ZoneTopRight {
		t.Errorf("Classify = %v, want TopRight", got)
	}
	// Above and overlapping horizontally is not a corner.
	if got := Classify(bl(8, 15, 5, 5), bl(0, 0, 10, 10)); got != ZoneTopMiddle {
		t.Errorf("Classify = %v, want TopMiddle", got)
	}
}

func TestClassifyMixedPivots(t *testing.T) {
	a := Rect{X: 5, Y: 15, Width: 10, Height: 10, Pivot: AnchorTopLeft} // spans y 5..15
	b := Rect{X: 5, Y: 0, Width: 10, Height: 10, Pivot: AnchorMiddle}   // spans y -5..5
	if got := Classify(a, b); got != ZoneTopMiddle {
		t.Errorf("Classify = %v, want TopMiddle", got)
	}
}

func TestClassifySelfIsMiddle(t *testing.T) {
	for _, r := range []Rect{bl(0, 0, 10, 10), bl(-3, 7, 1, 200), {X: 1, Y: 1, Width: 2, Height: 3, Pivot: AnchorMiddle}} {
		if got := Classify(r, r); got != ZoneMiddle {
			t.Errorf("Classify(%v, itself) = %v, want Middle", r, got)
		}
	}
}

func TestClassifyReflection(t *testing.T) {
	b := bl(0, 0, 10, 10)
	for x := -20.0; x <= 20; x += 2.5 {
		for y := -20.0; y <= 20; y += 2.5 {
			for _, size := range []float64{3, 10, 25} {
				a := bl(x, y, size, size/2+1)
				ab, ba := Classify(a, b), Classify(b, a)
				if ba != ab.Opposite() {
					t.Fatalf("Classify(a,b) = %v but Classify(b,a) = %v for a=%v", ab, ba, a)
				}
			}
		}
	}
}

func TestZoneDirection(t *testing.T) {
	tests := []struct {
		z      Zone
		dx, dy int
	}{
		{ZoneTopRight, 1, 1},
		{ZoneTopMiddle, 0, 1},
		{ZoneMiddleLeft, -1, 0},
		{ZoneMiddle, 0, 0},
		{ZoneBottomLeft, -1, -1},
	}
	for _, tt := range tests {
		dx, dy := tt.z.Direction()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Direction() = (%d,%d), want (%d,%d)", tt.z, dx, dy, tt.dx, tt.dy)
		}
		odx, ody := tt.z.Opposite().Direction()
		if odx != -dx || ody != -dy {
			t.Errorf("%v.Opposite() direction = (%d,%d), want (%d,%d)", tt.z, odx, ody, -dx, -dy)
		}
	}
}

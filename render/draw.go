package render

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/platformer"
)

// buttonFrame is the stroke width of button borders in pixels.
const buttonFrame = 2

// toRGBA converts c with an extra alpha multiplier to an 8-bit color.
func toRGBA(c platformer.Color, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A * alpha),
	}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// imageRect converts b from the y-up viewport frame to image pixels.
func imageRect(b platformer.Bounds, vh float64) (x, y, w, h float32) {
	return float32(b.Left), float32(vh - b.Top), float32(b.Width()), float32(b.Height())
}

// anchorPoint returns the text origin of a box anchored at pivot, in the
// y-up frame, with the matching text alignment.
func anchorPoint(pivot platformer.Anchor, b platformer.Bounds) (x, y float64, h, v text.Align) {
	switch pivot {
	case platformer.AnchorTopLeft, platformer.AnchorMiddleLeft, platformer.AnchorBottomLeft:
		x, h = b.Left, text.AlignStart
	case platformer.AnchorTopRight, platformer.AnchorMiddleRight, platformer.AnchorBottomRight:
		x, h = b.Right, text.AlignEnd
	default:
		x, h = (b.Left+b.Right)/2, text.AlignCenter
	}
	switch pivot {
	case platformer.AnchorTopLeft, platformer.AnchorTopMiddle, platformer.AnchorTopRight:
		y, v = b.Top, text.AlignStart
	case platformer.AnchorBottomLeft, platformer.AnchorBottomMiddle, platformer.AnchorBottomRight:
		y, v = b.Bottom, text.AlignEnd
	default:
		y, v = (b.Bottom+b.Top)/2, text.AlignCenter
	}
	return x, y, h, v
}

// lineHeight returns the distance between baselines of face.
func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// wrapLines breaks s into lines no wider than width, splitting at spaces.
// Explicit newlines are kept. A word wider than width gets a line of its
// own. A non-positive width disables wrapping.
func wrapLines(s string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		if width <= 0 {
			lines = append(lines, strings.Join(words, " "))
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if next := cur + " " + w; measure(next) <= width {
				cur = next
				continue
			}
			lines = append(lines, cur)
			cur = w
		}
		lines = append(lines, cur)
	}
	return lines
}

// drawNode paints one node whose box b is in the y-up viewport frame.
func (r *Renderer) drawNode(dst *ebiten.Image, n *Node, b platformer.Bounds, alpha float64) {
	vh := float64(r.cfg.Height)
	x, y, w, h := imageRect(b, vh)
	if n.Color.A > 0 {
		vector.DrawFilledRect(dst, x, y, w, h, toRGBA(n.Color, alpha), false)
	}

	switch n.Kind {
	case platformer.NodeButton:
		if n.Frame.A > 0 {
			vector.StrokeRect(dst, x, y, w, h, buttonFrame, toRGBA(n.Frame, alpha), false)
		}
		cx, cy := (b.Left+b.Right)/2, (b.Bottom+b.Top)/2
		r.drawText(dst, n, n.Text, cx, vh-cy, text.AlignCenter, text.AlignCenter, alpha)
	case platformer.NodeLabel:
		px, py, ha, va := anchorPoint(n.Rect.Pivot, b)
		r.drawText(dst, n, n.Text, px, vh-py, ha, va, alpha)
	case platformer.NodeText:
		face := r.fonts.Face(n.Font)
		lh := lineHeight(face)
		lines := wrapLines(n.Text, b.Width(), func(s string) float64 {
			w, _ := text.Measure(s, face, lh)
			return w
		})
		r.drawText(dst, n, strings.Join(lines, "\n"), (b.Left+b.Right)/2, vh-b.Top, text.AlignCenter, text.AlignStart, alpha)
	}
}

// drawText draws s with the node's font and text color, aligned on (x, y)
// in image pixels.
func (r *Renderer) drawText(dst *ebiten.Image, n *Node, s string, x, y float64, h, v text.Align, alpha float64) {
	if s == "" {
		return
	}
	face := r.fonts.Face(n.Font)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toRGBA(n.TextColor, alpha))
	op.LineSpacing = lineHeight(face)
	op.PrimaryAlign = h
	op.SecondaryAlign = v
	text.Draw(dst, s, face, op)
}

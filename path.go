package main

import (
	"fmt"
	"strings"
)

const (
	pathStraight = "straight"
	pathCubic    = "cubic"
)

// pointsToPathString serializes an ordered point list into an SVG path
// description. Fewer than two points yields "": the caller treats that as
// nothing to draw, not an error.
//
// straight emits move-to plus line-to segments. cubic treats the sequence as a
// Catmull-Rom spline: tangents at each span's endpoints are tension-scaled
// differences of the neighboring points (boundary points duplicated), and each
// span becomes one cubic Bezier whose control points sit at one third of the
// tangent vectors.
func pointsToPathString(pts []point, mode string, tension float64, closed bool) string {
	if len(pts) < 2 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f", pts[0].x, pts[0].y)

	if mode == pathStraight {
		for _, p := range pts[1:] {
			fmt.Fprintf(&b, " L %.2f %.2f", p.x, p.y)
		}
	} else {
		for i := 0; i < len(pts)-1; i++ {
			p1 := pts[i]
			p2 := pts[i+1]
			p0 := p1
			if i > 0 {
				p0 = pts[i-1]
			}
			p3 := p2
			if i+2 < len(pts) {
				p3 = pts[i+2]
			}

			// Tangents at the span endpoints.
			m1x := tension * (p2.x - p0.x)
			m1y := tension * (p2.y - p0.y)
			m2x := tension * (p3.x - p1.x)
			m2y := tension * (p3.y - p1.y)

			c1x := p1.x + m1x/3
			c1y := p1.y + m1y/3
			c2x := p2.x - m2x/3
			c2y := p2.y - m2y/3

			fmt.Fprintf(&b, " C %.2f %.2f, %.2f %.2f, %.2f %.2f", c1x, c1y, c2x, c2y, p2.x, p2.y)
		}
	}

	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}

func writePathMove(b *strings.Builder, x, y float64) {
	fmt.Fprintf(b, "M %.2f %.2f", x, y)
}

// rotateAttr formats a rotation transform about a point, in degrees.
func rotateAttr(deg, x, y float64) string {
	return fmt.Sprintf("rotate(%.2f %.2f %.2f)", deg, x, y)
}

// arcTo appends an elliptical arc command with explicit large-arc and sweep
// flags.
func arcTo(b *strings.Builder, rx, ry float64, largeArc, sweep bool, x, y float64) {
	la, sw := 0, 0
	if largeArc {
		la = 1
	}
	if sweep {
		sw = 1
	}
	fmt.Fprintf(b, " A %.2f %.2f 0 %d %d %.2f %.2f", rx, ry, la, sw, x, y)
}

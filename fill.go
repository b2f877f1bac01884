package main

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	fillSolid    = "solid"
	fillGradient = "gradient"
	fillPattern  = "pattern"
	fillNone     = "none"
)

// DefinitionRegistry accumulates gradient and pattern definitions for one
// generation pass. Ids are counter-based so a fixed seed reproduces the same
// document byte for byte; the registry is torn down and recreated each pass.
type DefinitionRegistry struct {
	fragments []string
	nextID    int
}

func newDefinitionRegistry() *DefinitionRegistry {
	return &DefinitionRegistry{}
}

// newID hands out the next definition id for the given kind.
func (r *DefinitionRegistry) newID(kind string) string {
	r.nextID++
	return fmt.Sprintf("%s-%d", kind, r.nextID)
}

// add stores one fully rendered definition fragment.
func (r *DefinitionRegistry) add(fragment string) {
	r.fragments = append(r.fragments, fragment)
}

func (r *DefinitionRegistry) size() int {
	return len(r.fragments)
}

func (r *DefinitionRegistry) render(w *bytes.Buffer) {
	if len(r.fragments) == 0 {
		return
	}
	w.WriteString("<defs>\n")
	for _, f := range r.fragments {
		w.WriteString(f)
		w.WriteString("\n")
	}
	w.WriteString("</defs>\n")
}

// resolveFill returns the fill attribute value for one primitive: a plain
// color for solid, "none", or a "url(#id)" handle for a freshly registered
// gradient or pattern. A nil registry degrades to a solid color rather than
// failing.
func resolveFill(reg *DefinitionRegistry, pal []string, mode string, rng *lcg) string {
	switch mode {
	case fillNone:
		return "none"
	case fillGradient:
		if reg == nil {
			return pickColor(pal, rng)
		}
		return "url(#" + registerGradient(reg, pal, rng) + ")"
	case fillPattern:
		if reg == nil {
			return pickColor(pal, rng)
		}
		return "url(#" + registerPattern(reg, pal, rng) + ")"
	default:
		return pickColor(pal, rng)
	}
}

// registerGradient builds a 2-4 stop gradient, linear 70% of the time and
// radial otherwise, with randomized geometry and jittered stop colors.
func registerGradient(reg *DefinitionRegistry, pal []string, rng *lcg) string {
	nStops := 2 + rng.Intn(3)
	var stops strings.Builder
	for i := 0; i < nStops; i++ {
		offset := float64(i) / float64(nStops-1) * 100
		color := jitterColor(pickColor(pal, rng), rng)
		opacity := rng.Range(0.7, 1.0)
		fmt.Fprintf(&stops, `  <stop offset="%.0f%%" stop-color="%s" stop-opacity="%.2f"/>`, offset, color, opacity)
		stops.WriteString("\n")
	}

	id := reg.newID("grad")
	if rng.Chance(0.7) {
		// Linear gradient along a random direction.
		x2 := rng.Range(0, 100)
		y2 := rng.Range(0, 100)
		reg.add(fmt.Sprintf("<linearGradient id=\"%s\" x1=\"0%%\" y1=\"0%%\" x2=\"%.0f%%\" y2=\"%.0f%%\">\n%s</linearGradient>",
			id, x2, y2, stops.String()))
		return id
	}
	cx := rng.Range(25, 75)
	cy := rng.Range(25, 75)
	reg.add(fmt.Sprintf("<radialGradient id=\"%s\" cx=\"%.0f%%\" cy=\"%.0f%%\" r=\"75%%\">\n%s</radialGradient>",
		id, cx, cy, stops.String()))
	return id
}

// registerPattern builds a small tiled pattern from one of six motifs with a
// tile size of 8-25 units.
func registerPattern(reg *DefinitionRegistry, pal []string, rng *lcg) string {
	tile := rng.Range(8, 25)
	fg := pickColor(pal, rng)
	bg := pickColor(pal, rng)
	half := tile / 2

	var motif string
	switch rng.Intn(6) {
	case 0: // dots
		motif = fmt.Sprintf(`  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`, half, half, tile/5, fg)
	case 1: // lines
		motif = fmt.Sprintf(`  <line x1="0" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`, half, tile, half, fg, tile/8)
	case 2: // diagonals
		motif = fmt.Sprintf(`  <path d="M 0 0 L %.2f %.2f" stroke="%s" stroke-width="%.2f"/>`, tile, tile, fg, tile/8)
	case 3: // checkerboard
		motif = fmt.Sprintf(`  <rect width="%.2f" height="%.2f" fill="%s"/><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
			half, half, fg, half, half, half, half, fg)
	case 4: // triangles
		motif = fmt.Sprintf(`  <polygon points="%.2f,0 %.2f,%.2f 0,%.2f" fill="%s"/>`, half, tile, tile, tile, fg)
	default: // centered shape
		motif = fmt.Sprintf(`  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`, tile/4, tile/4, half, half, fg)
	}

	id := reg.newID("pat")
	reg.add(fmt.Sprintf("<pattern id=\"%s\" width=\"%.2f\" height=\"%.2f\" patternUnits=\"userSpaceOnUse\">\n  <rect width=\"%.2f\" height=\"%.2f\" fill=\"%s\"/>\n%s\n</pattern>",
		id, tile, tile, tile, tile, bg, motif))
	return id
}

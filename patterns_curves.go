package main

import (
	"math"
)

// --- Trigonometric waves ---

// waveAmplitude resolves the row amplitude, falling back to a fraction of the
// line spacing when the wave knob is unset.
func waveAmplitude(o genOptions) float64 {
	if o.lineWave > 0 {
		return o.lineWave
	}
	return o.lineSpacing * 0.6
}

// waveRowPoints samples one wave row around its baseline. Tangent rows blow up
// near their asymptotes, so those samples are clamped to three amplitudes
// instead of being discarded.
func waveRowPoints(o genOptions, rowY, phase float64, useTan bool) []point {
	amplitude := waveAmplitude(o)
	freq := o.complexity * 2 * math.Pi / o.width * o.repetition
	clampLimit := amplitude * 3

	pts := make([]point, 0, o.curveSteps+1)
	for i := 0; i <= o.curveSteps; i++ {
		t := float64(i) / float64(o.curveSteps)
		x := t * o.width
		var dy float64
		if useTan {
			dy = math.Tan(freq*x + phase)
			dy = clampFloat(dy*amplitude*o.lineRatio, -clampLimit, clampLimit)
		} else {
			dy = math.Sin(freq*x+phase) * amplitude
		}
		// lineArc bows the whole row toward a half-sine arch.
		dy += math.Sin(t*math.Pi) * o.lineArc
		pts = append(pts, point{x, rowY + dy})
	}
	return pts
}

// generateWaves draws stacked wave rows across the viewport, mixing sine and
// tangent sources.
func generateWaves(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	rows := int(o.height / o.lineSpacing)
	if rows < 1 {
		rows = 1
	}

	for row := 0; row < rows; row++ {
		rowY := (float64(row) + 0.5) * o.lineSpacing
		phase := ctx.rng.Range(0, 2*math.Pi)
		useTan := ctx.rng.Chance(0.25)
		pts := waveRowPoints(o, rowY, phase, useTan)

		d := pointsToPathString(pts, o.curveMode, o.splineTension, false)
		if d == "" {
			continue
		}
		g.add(&Path{D: d, CX: o.width / 2, CY: rowY, Style: style{
			Stroke:      pickColor(ctx.pal, ctx.rng),
			StrokeWidth: o.strokeWeight,
			Opacity:     o.opacity,
		}})
	}

	return LayerResult{Elements: rows, Metrics: map[string]float64{
		"rows":  float64(rows),
		"steps": float64(o.curveSteps),
	}}
}

// --- Bezier ribbons ---

// generateBezier draws smoothed random walks. When a captured pointer
// coordinate is present it anchors every ribbon; otherwise the viewport
// center does.
func generateBezier(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	anchor := point{o.width / 2, o.height / 2}
	if o.cursor != nil {
		anchor = *o.cursor
	}

	ribbons := int(o.complexity * o.repetition)
	if ribbons < 1 {
		ribbons = 1
	}
	segs := 3 + int(o.density/20)

	for i := 0; i < ribbons; i++ {
		pts := make([]point, 0, segs+1)
		pts = append(pts, anchor)
		reach := math.Min(o.width, o.height) * 0.4 * o.scale
		for s := 0; s < segs; s++ {
			pts = append(pts, point{
				anchor.x + ctx.rng.Range(-reach, reach),
				anchor.y + ctx.rng.Range(-reach, reach),
			})
		}

		d := pointsToPathString(pts, pathCubic, o.splineTension, false)
		if d == "" {
			continue
		}
		g.add(&Path{D: d, CX: anchor.x, CY: anchor.y, Style: style{
			Stroke:      pickColor(ctx.pal, ctx.rng),
			StrokeWidth: o.strokeWeight,
			Opacity:     o.opacity * ctx.rng.Range(0.6, 1.0),
		}})
	}

	return LayerResult{Elements: ribbons, Metrics: map[string]float64{
		"ribbons":  float64(ribbons),
		"segments": float64(segs),
	}}
}

// --- Lissajous figure ---

// generateLissajous samples x = cx + Rx*sin(a*t + delta), y = cy + Ry*sin(b*t)
// over one full period. The phase knob is a rational multiple of pi.
func generateLissajous(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	cx, cy := o.width/2, o.height/2
	rx := o.width * 0.4 * o.scale
	ry := o.height * 0.4 * o.scale
	delta := o.lissPhase * math.Pi
	steps := o.curveSteps

	pts := make([]point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps) * 2 * math.Pi
		pts = append(pts, point{
			cx + rx*math.Sin(o.lissA*t+delta),
			cy + ry*math.Sin(o.lissB*t),
		})
	}

	d := pointsToPathString(pts, o.curveMode, o.splineTension, true)
	elements := 0
	if d != "" {
		g.add(&Path{D: d, CX: cx, CY: cy, Style: style{
			Fill:        ctx.fill(),
			Stroke:      pickColor(ctx.pal, ctx.rng),
			StrokeWidth: o.strokeWeight,
			Opacity:     o.opacity,
		}})
		elements = 1
	}

	return LayerResult{Elements: elements, Metrics: map[string]float64{
		"a":     o.lissA,
		"b":     o.lissB,
		"steps": float64(steps),
	}}
}

// --- Rose curve ---

// generateRose samples r = R*cos(n*theta). Fractional n is permitted; the
// curve then needs several revolutions to close, so theta runs well past 2*pi.
func generateRose(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	cx, cy := o.width/2, o.height/2
	radius := math.Min(o.width, o.height) * 0.4 * o.scale
	steps := o.curveSteps * 2

	// Integer n closes within 2*pi (odd) or 4*pi (even); fractional n gets a
	// generous fixed span.
	revolutions := 2.0
	if o.roseN != math.Trunc(o.roseN) {
		revolutions = 8.0
	}

	pts := make([]point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		theta := float64(i) / float64(steps) * revolutions * math.Pi
		r := radius * math.Cos(o.roseN*theta)
		pts = append(pts, point{
			cx + r*math.Cos(theta),
			cy + r*math.Sin(theta),
		})
	}

	d := pointsToPathString(pts, o.curveMode, o.splineTension, true)
	elements := 0
	if d != "" {
		g.add(&Path{D: d, CX: cx, CY: cy, Style: style{
			Fill:        ctx.fill(),
			Stroke:      pickColor(ctx.pal, ctx.rng),
			StrokeWidth: o.strokeWeight,
			Opacity:     o.opacity,
		}})
		elements = 1
	}

	return LayerResult{Elements: elements, Metrics: map[string]float64{
		"n":     o.roseN,
		"steps": float64(steps),
	}}
}

package main

import (
	"log"
	"math"
	"strings"
)

// --- Phyllotaxis spiral ---

// goldenAngle is 2*pi*(1 - 1/phi), the divergence angle of natural spiral
// packings.
var goldenAngle = 2 * math.Pi * (1 - 2/(1+math.Sqrt(5)))

func generatePhyllotaxis(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	n := int(50 * o.complexity * o.density / 100 * o.repetition)
	if n < 10 {
		n = 10
	}
	cx, cy := o.width/2, o.height/2
	maxR := math.Min(o.width, o.height) * 0.45 * o.scale

	for i := 0; i < n; i++ {
		angle := float64(i) * goldenAngle
		r := maxR * math.Sqrt(float64(i)/float64(n))
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		size := 1.5 + 4*float64(i)/float64(n)*o.scale
		st := ctx.baseStyle()

		switch i % 3 {
		case 0:
			g.add(&Circle{CX: x, CY: y, R: size, Style: st})
		case 1:
			st.Transform = rotateAttr(angle*180/math.Pi, x, y)
			g.add(&Rect{X: x - size, Y: y - size, W: size * 2, H: size * 2, Style: st})
		default:
			g.add(&Ellipse{CX: x, CY: y, RX: size * 1.4, RY: size * 0.8, Style: st})
		}
	}

	return LayerResult{Elements: n, Metrics: map[string]float64{
		"points": float64(n),
	}}
}

// --- Escape-time fractal ---

// Fixed complex-plane window of the classic Mandelbrot view.
const (
	mandelMinX = -2.5
	mandelMaxX = 1.0
	mandelMinY = -1.25
	mandelMaxY = 1.25
)

// generateMandelbrot samples a square grid over the fixed window, iterating
// z <- z^2 + c with a hard iteration cap. Cells that escape before the cap are
// drawn sized and colored by normalized escape speed; cells that never escape
// stay blank.
func generateMandelbrot(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	resolution := int(clampFloat(o.complexity*10, 10, 150))
	maxIter := int(o.complexity*15 + 20)
	cellW := o.width / float64(resolution)
	cellH := o.height / float64(resolution)
	pal := ctx.pal
	if len(pal) == 0 {
		pal = fallbackPalette
	}
	drawn := 0

	for row := 0; row < resolution; row++ {
		for col := 0; col < resolution; col++ {
			cr := mandelMinX + (mandelMaxX-mandelMinX)*float64(col)/float64(resolution)
			ci := mandelMinY + (mandelMaxY-mandelMinY)*float64(row)/float64(resolution)

			var zr, zi float64
			iter := 0
			for ; iter < maxIter; iter++ {
				zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
				if zr*zr+zi*zi > 4 {
					break
				}
			}
			if iter >= maxIter {
				continue
			}

			speed := 1 - float64(iter)/float64(maxIter)
			x := (float64(col) + 0.5) * cellW
			y := (float64(row) + 0.5) * cellH
			size := math.Min(cellW, cellH) * 0.5 * speed * o.scale
			if size < 0.3 {
				continue
			}
			color := pal[int(speed*float64(len(pal)-1))]
			g.add(&Circle{CX: x, CY: y, R: size, Style: style{
				Fill:    color,
				Opacity: o.opacity * (0.4 + 0.6*speed),
			}})
			drawn++
		}
	}

	return LayerResult{Elements: drawn, Metrics: map[string]float64{
		"resolution": float64(resolution),
		"max_iter":   float64(maxIter),
	}}
}

// --- Prime pattern ---

// primeSearchBound caps trial-division search so a huge requested count
// cannot stall the pass.
const primeSearchBound = 100000

// firstPrimes returns the first n primes by trial division, stopping early at
// the search bound.
func firstPrimes(n int) []int {
	primes := make([]int, 0, n)
	for candidate := 2; len(primes) < n && candidate < primeSearchBound; candidate++ {
		isPrime := true
		for _, p := range primes {
			if p*p > candidate {
				break
			}
			if candidate%p == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, candidate)
		}
	}
	return primes
}

// generatePrimes lays the first N primes out on a plain grid or an Ulam-style
// square spiral, chosen per pass. Shape and size derive from log(p)/log(max)
// and p mod 5.
func generatePrimes(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	n := int(o.complexity * o.density / 100 * 30 * o.repetition)
	if n < 10 {
		n = 10
	}
	primes := firstPrimes(n)
	if len(primes) == 0 {
		return LayerResult{Elements: 0}
	}
	maxPrime := primes[len(primes)-1]
	logMax := math.Log(float64(maxPrime))
	useSpiral := ctx.rng.Chance(0.5)
	switch o.spiralType {
	case "ulam":
		useSpiral = true
	case "grid":
		useSpiral = false
	}

	side := int(math.Ceil(math.Sqrt(float64(len(primes)))))
	cellW := o.width / float64(side)
	cellH := o.height / float64(side)
	cx, cy := o.width/2, o.height/2
	step := math.Min(cellW, cellH)

	// Ulam walk state: spiral outward turning left whenever possible.
	sx, sy := 0, 0
	dx, dy := 1, 0
	armLen, armStep, turns := 1, 0, 0

	for i, p := range primes {
		var x, y float64
		if useSpiral {
			x = cx + float64(sx)*step
			y = cy + float64(sy)*step
			sx += dx
			sy += dy
			armStep++
			if armStep == armLen {
				armStep = 0
				dx, dy = -dy, dx
				turns++
				if turns%2 == 0 {
					armLen++
				}
			}
		} else {
			x = (float64(i%side) + 0.5) * cellW
			y = (float64(i/side) + 0.5) * cellH
		}

		weight := math.Log(float64(p)) / logMax
		size := (2 + 6*weight) * o.scale
		st := ctx.baseStyle()
		switch p % 5 {
		case 0, 1:
			g.add(&Circle{CX: x, CY: y, R: size, Style: st})
		case 2:
			g.add(&Rect{X: x - size, Y: y - size, W: size * 2, H: size * 2, Style: st})
		case 3:
			g.add(&Polygon{Points: regularPolygon(x, y, size, weight*math.Pi, 3), Style: st})
		default:
			g.add(&Polygon{Points: regularPolygon(x, y, size, weight*math.Pi, 5), Style: st})
		}
	}

	layout := 0.0
	if useSpiral {
		layout = 1.0
	}
	return LayerResult{Elements: len(primes), Metrics: map[string]float64{
		"primes":    float64(len(primes)),
		"max_prime": float64(maxPrime),
		"spiral":    layout,
	}}
}

// --- Padovan spiral ---

// padovanSequence returns P(0..n-1) with P(n) = P(n-2) + P(n-3), seeded
// 1, 1, 1. Generation halts early once a term would exceed the cap.
func padovanSequence(n int) []int {
	if n <= 0 {
		return nil
	}
	seq := []int{1, 1, 1}
	if n < 3 {
		return seq[:n]
	}
	for len(seq) < n {
		next := seq[len(seq)-2] + seq[len(seq)-3]
		if next > seqTermCap {
			log.Printf("Warning: padovan sequence truncated at %d terms (term cap %d)", len(seq), seqTermCap)
			break
		}
		seq = append(seq, next)
	}
	return seq
}

// generatePadovan drives a line-segment spiral that turns 120 degrees per
// sequence term, segment lengths proportional to the terms.
func generatePadovan(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	terms := int(8 + o.complexity*2*o.repetition)
	seq := padovanSequence(terms)
	if len(seq) < 2 {
		return LayerResult{Elements: 0}
	}

	// Scale so the largest term still fits the viewport.
	unit := math.Min(o.width, o.height) * 0.4 / float64(seq[len(seq)-1]) * o.scale
	x, y := o.width/2, o.height/2
	heading := 0.0
	pts := []point{{x, y}}
	for _, term := range seq {
		x += math.Cos(heading) * float64(term) * unit
		y += math.Sin(heading) * float64(term) * unit
		pts = append(pts, point{x, y})
		heading += 2 * math.Pi / 3
	}

	d := pointsToPathString(pts, o.curveMode, o.splineTension, false)
	elements := 0
	if d != "" {
		g.add(&Path{D: d, CX: o.width / 2, CY: o.height / 2, Style: style{
			Stroke:      pickColor(ctx.pal, ctx.rng),
			StrokeWidth: o.strokeWeight,
			Opacity:     o.opacity,
		}})
		elements = 1
	}

	return LayerResult{Elements: elements, Metrics: map[string]float64{
		"terms":     float64(len(seq)),
		"last_term": float64(seq[len(seq)-1]),
	}}
}

// --- Recaman arcs ---

// recamanSequence returns a(0..n-1) with a(0) = 0 and
// a(n) = a(n-1) - n when that is positive and unused, else a(n-1) + n.
// Generation halts early once a term exceeds the cap.
func recamanSequence(n int) []int {
	if n <= 0 {
		return nil
	}
	seq := []int{0}
	used := map[int]bool{0: true}
	for i := 1; len(seq) < n; i++ {
		prev := seq[len(seq)-1]
		next := prev - i
		if next <= 0 || used[next] {
			next = prev + i
		}
		if next > seqTermCap {
			log.Printf("Warning: recaman sequence truncated at %d terms (term cap %d)", len(seq), seqTermCap)
			break
		}
		used[next] = true
		seq = append(seq, next)
	}
	return seq
}

// generateRecaman renders the sequence as alternating-sweep semicircular arcs
// along a horizontal baseline, scaled to fit 80% of the viewport width.
func generateRecaman(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	terms := int(10 + o.complexity*3*o.repetition)
	seq := recamanSequence(terms)
	if len(seq) < 2 {
		return LayerResult{Elements: 0}
	}

	maxTerm := 0
	for _, v := range seq {
		if v > maxTerm {
			maxTerm = v
		}
	}
	if maxTerm == 0 {
		return LayerResult{Elements: 0}
	}
	unit := o.width * 0.8 / float64(maxTerm)
	left := o.width * 0.1
	baseY := o.height / 2

	var b strings.Builder
	startX := left + float64(seq[0])*unit
	writePathMove(&b, startX, baseY)
	for i := 1; i < len(seq); i++ {
		x0 := left + float64(seq[i-1])*unit
		x1 := left + float64(seq[i])*unit
		r := math.Abs(x1-x0) / 2
		if r == 0 {
			continue
		}
		// Alternate the sweep so consecutive arcs bow to opposite sides.
		sweep := i%2 == 0
		if x1 < x0 {
			sweep = !sweep
		}
		arcTo(&b, r, r, false, sweep, x1, baseY)
	}

	g.add(&Path{D: b.String(), CX: o.width / 2, CY: baseY, Style: style{
		Stroke:      pickColor(ctx.pal, ctx.rng),
		StrokeWidth: o.strokeWeight,
		Opacity:     o.opacity,
	}})

	return LayerResult{Elements: 1, Metrics: map[string]float64{
		"terms":    float64(len(seq)),
		"max_term": float64(maxTerm),
	}}
}

package main

import (
	"log"
	"math"
)

// Safety valves. maxNodes bounds the recursive and subdivision strategies so a
// hostile parameter combination cannot freeze the single generation thread;
// seqTermCap bounds the integer-sequence strategies.
const (
	maxNodes   = 10000
	seqTermCap = 1_000_000
)

// genContext carries everything a strategy needs for one layer: the resolved
// options, the palette, the pass RNG, the defs registry, and the shared node
// budget threaded through recursive strategies.
type genContext struct {
	opts   genOptions
	pal    []string
	rng    *lcg
	reg    *DefinitionRegistry
	budget int
}

func newGenContext(opts genOptions, pal []string, rng *lcg, reg *DefinitionRegistry) *genContext {
	return &genContext{opts: opts, pal: pal, rng: rng, reg: reg, budget: maxNodes}
}

// spend consumes one unit of the node budget; false means the cap was hit.
func (c *genContext) spend() bool {
	if c.budget <= 0 {
		return false
	}
	c.budget--
	return true
}

func (c *genContext) fill() string {
	return resolveFill(c.reg, c.pal, c.opts.fillMode, c.rng)
}

func (c *genContext) baseStyle() style {
	return style{
		Fill:        c.fill(),
		Stroke:      c.opts.strokeColor,
		StrokeWidth: c.opts.strokeWeight,
		Opacity:     c.opts.opacity,
	}
}

type strategyFunc func(g *Group, ctx *genContext) LayerResult

// strategies maps pattern-type tags to their generators. Lookup failures fall
// back to scatter with a logged warning rather than failing the pass.
var strategies = map[string]strategyFunc{
	"scatter":     generateScatter,
	"branch":      generateBranching,
	"grid":        generateGrid,
	"quadtree":    generateQuadtree,
	"phyllotaxis": generatePhyllotaxis,
	"mandelbrot":  generateMandelbrot,
	"primes":      generatePrimes,
	"waves":       generateWaves,
	"bezier":      generateBezier,
	"lissajous":   generateLissajous,
	"rose":        generateRose,
	"padovan":     generatePadovan,
	"recaman":     generateRecaman,
}

func lookupStrategy(patternType string) strategyFunc {
	if s, ok := strategies[patternType]; ok {
		return s
	}
	log.Printf("Warning: unknown pattern type %q, falling back to scatter", patternType)
	return generateScatter
}

// regularPolygon builds an n-gon centered at (cx, cy) with the given radius
// and rotation.
func regularPolygon(cx, cy, radius, rotation float64, sides int) []point {
	pts := make([]point, sides)
	for i := 0; i < sides; i++ {
		a := rotation + float64(i)/float64(sides)*2*math.Pi
		pts[i] = point{cx + radius*math.Cos(a), cy + radius*math.Sin(a)}
	}
	return pts
}

// --- Random scatter ---

func generateScatter(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	n := int(o.complexity * o.density / 100 * 20 * o.repetition)
	if n < 3 {
		n = 3
	}

	for i := 0; i < n; i++ {
		x := ctx.rng.Range(0, o.width)
		y := ctx.rng.Range(0, o.height)
		size := ctx.rng.Range(2, 2+o.complexity*3) * o.scale
		st := ctx.baseStyle()

		switch draw := ctx.rng.Float64(); {
		case draw < 0.3:
			g.add(&Circle{CX: x, CY: y, R: size, Style: st})
		case draw < 0.6:
			st.Transform = rotateAttr(ctx.rng.Range(0, 360), x, y)
			g.add(&Rect{X: x - size, Y: y - size, W: size * 2, H: size * 2, Style: st})
		default:
			sides := 3 + ctx.rng.Intn(5)
			g.add(&Polygon{Points: regularPolygon(x, y, size, ctx.rng.Range(0, 2*math.Pi), sides), Style: st})
		}
	}

	return LayerResult{Elements: n, Metrics: map[string]float64{"shapes": float64(n)}}
}

// --- Recursive branching ---

func generateBranching(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	cx, cy := o.width/2, o.height/2
	size := math.Min(o.width, o.height) / 8 * o.scale
	maxDepth := 0

	isCircle := ctx.rng.Chance(0.5)
	branchNode(g, ctx, cx, cy, size, isCircle, 0, &maxDepth)

	drawn := maxNodes - ctx.budget
	if ctx.budget <= 0 {
		log.Printf("Warning: branching strategy hit the %d-node safety cap", maxNodes)
	}
	return LayerResult{Elements: drawn, Metrics: map[string]float64{
		"max_depth": float64(maxDepth),
		"nodes":     float64(drawn),
	}}
}

// minBranchSize stops recursion before children shrink below visibility.
const minBranchSize = 1.5

func branchNode(g *Group, ctx *genContext, x, y, size float64, isCircle bool, depth int, maxDepth *int) {
	if depth > *maxDepth {
		*maxDepth = depth
	}
	if !ctx.spend() {
		return
	}

	st := ctx.baseStyle()
	if isCircle {
		g.add(&Circle{CX: x, CY: y, R: size, Style: st})
	} else {
		g.add(&Rect{X: x - size, Y: y - size, W: size * 2, H: size * 2, Style: st})
	}

	if depth >= ctx.opts.maxRecursion || size < minBranchSize {
		return
	}

	children := 2
	if span := int(ctx.opts.complexity / 1.5); span > 2 {
		children += ctx.rng.Intn(span - 1)
	}
	for i := 0; i < children; i++ {
		angle := ctx.rng.Range(0, 2*math.Pi)
		dist := size * ctx.rng.Range(1.8, 2.6)
		childSize := size * ctx.rng.Range(0.45, 0.65)
		childCircle := isCircle
		if !ctx.rng.Chance(0.6) {
			childCircle = !childCircle
		}
		branchNode(g, ctx, x+math.Cos(angle)*dist, y+math.Sin(angle)*dist, childSize, childCircle, depth+1, maxDepth)
	}
}

// --- Grid ---

func generateGrid(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	cells := int(math.Ceil(o.complexity*1.5 + o.repetition))
	if cells < 1 {
		cells = 1
	}
	cellW := o.width / float64(cells)
	cellH := o.height / float64(cells)
	skipProb := 1 - o.density/100
	drawn := 0

	for row := 0; row < cells; row++ {
		for col := 0; col < cells; col++ {
			if ctx.rng.Chance(skipProb) {
				continue
			}
			x := float64(col) * cellW
			y := float64(row) * cellH
			drawn += drawGridCell(g, ctx, x, y, cellW, cellH)
		}
	}

	// Faint grid lines over busy, dense grids.
	if o.complexity > 4 && o.density > 30 {
		lineStyle := style{Stroke: o.strokeColor, StrokeWidth: 0.5, Opacity: 0.15}
		for i := 1; i < cells; i++ {
			g.add(&Line{X1: float64(i) * cellW, Y1: 0, X2: float64(i) * cellW, Y2: o.height, Style: lineStyle})
			g.add(&Line{X1: 0, Y1: float64(i) * cellH, X2: o.width, Y2: float64(i) * cellH, Style: lineStyle})
			drawn += 2
		}
	}

	return LayerResult{Elements: drawn, Metrics: map[string]float64{
		"cells_per_side": float64(cells),
		"drawn":          float64(drawn),
	}}
}

func drawGridCell(g *Group, ctx *genContext, x, y, w, h float64) int {
	cx, cy := x+w/2, y+h/2
	inset := math.Min(w, h) * 0.35 * ctx.opts.scale
	st := ctx.baseStyle()

	switch ctx.rng.Intn(6) {
	case 0:
		g.add(&Circle{CX: cx, CY: cy, R: inset, Style: st})
	case 1:
		g.add(&Rect{X: cx - inset, Y: cy - inset, W: inset * 2, H: inset * 2, Style: st})
	case 2:
		g.add(&Line{X1: x, Y1: y, X2: x + w, Y2: y + h, Style: st})
	case 3:
		sides := 3 + ctx.rng.Intn(4)
		g.add(&Polygon{Points: regularPolygon(cx, cy, inset, ctx.rng.Range(0, 2*math.Pi), sides), Style: st})
	case 4:
		g.add(&Ellipse{CX: cx, CY: cy, RX: inset, RY: inset * ctx.rng.Range(0.4, 0.8), Style: st})
	default:
		// Nested shape: an outline with a smaller filled copy inside.
		outer := st
		outer.Fill = "none"
		g.add(&Rect{X: cx - inset, Y: cy - inset, W: inset * 2, H: inset * 2, Style: outer})
		g.add(&Circle{CX: cx, CY: cy, R: inset * 0.5, Style: st})
		return 2
	}
	return 1
}

// --- Quadtree subdivision ---

func generateQuadtree(g *Group, ctx *genContext) LayerResult {
	o := ctx.opts
	maxLeafDepth := 0
	quadtreeNode(g, ctx, 0, 0, o.width, o.height, 0, &maxLeafDepth)

	drawn := maxNodes - ctx.budget
	if ctx.budget <= 0 {
		log.Printf("Warning: quadtree strategy hit the %d-node safety cap", maxNodes)
	}
	return LayerResult{Elements: drawn, Metrics: map[string]float64{
		"max_depth": float64(maxLeafDepth),
		"nodes":     float64(drawn),
	}}
}

func quadtreeNode(g *Group, ctx *genContext, x, y, w, h float64, depth int, maxLeafDepth *int) {
	if depth > *maxLeafDepth {
		*maxLeafDepth = depth
	}
	if ctx.budget <= 0 {
		return
	}

	o := ctx.opts
	maxDepth := o.maxRecursion
	subdivideProb := 0.4 + 0.3*o.complexity/10 + 0.3*o.density/100 - 0.3*float64(depth)/float64(maxDepth)

	if depth < maxDepth && w > 2 && h > 2 && ctx.rng.Chance(subdivideProb) {
		hw, hh := w/2, h/2
		quadtreeNode(g, ctx, x, y, hw, hh, depth+1, maxLeafDepth)
		quadtreeNode(g, ctx, x+hw, y, hw, hh, depth+1, maxLeafDepth)
		quadtreeNode(g, ctx, x, y+hh, hw, hh, depth+1, maxLeafDepth)
		quadtreeNode(g, ctx, x+hw, y+hh, hw, hh, depth+1, maxLeafDepth)
		return
	}

	if !ctx.spend() {
		return
	}
	drawQuadtreeLeaf(g, ctx, x, y, w, h)
}

func drawQuadtreeLeaf(g *Group, ctx *genContext, x, y, w, h float64) {
	cx, cy := x+w/2, y+h/2
	inset := math.Min(w, h) * 0.4
	st := ctx.baseStyle()

	switch ctx.rng.Intn(5) {
	case 0:
		g.add(&Rect{X: x + 1, Y: y + 1, W: w - 2, H: h - 2, Style: st})
	case 1:
		g.add(&Circle{CX: cx, CY: cy, R: inset, Style: st})
	case 2:
		g.add(&Ellipse{CX: cx, CY: cy, RX: w * 0.4, RY: h * 0.4, Style: st})
	case 3:
		g.add(&Line{X1: x, Y1: y + h, X2: x + w, Y2: y, Style: st})
	default:
		g.add(&Polygon{Points: regularPolygon(cx, cy, inset, ctx.rng.Range(0, 2*math.Pi), 3+ctx.rng.Intn(3)), Style: st})
	}
}

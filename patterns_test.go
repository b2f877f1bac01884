package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// testContext builds a generation context from raw options the way the
// compositor does for a single layer.
func testContext(opts GenerationOptions, seed int64) *genContext {
	return newGenContext(opts.withDefaults(), testPalette, newLCG(seed), newDefinitionRegistry())
}

func TestPadovanSequence(t *testing.T) {
	assert.Equal(t, []int{1, 1, 1, 2, 2, 3}, padovanSequence(6))
	assert.Equal(t, []int{1, 1}, padovanSequence(2))
	assert.Nil(t, padovanSequence(0))
}

func TestRecamanSequence(t *testing.T) {
	assert.Equal(t, []int{0, 1, 3, 6, 2, 7, 13, 20}, recamanSequence(8))
	assert.Equal(t, []int{0}, recamanSequence(1))
	assert.Nil(t, recamanSequence(0))
}

func TestRecamanSequenceTermsAreDistinct(t *testing.T) {
	seq := recamanSequence(100)
	seen := map[int]bool{}
	for _, v := range seq {
		assert.False(t, seen[v], "duplicate term %d", v)
		seen[v] = true
	}
}

func TestFirstPrimes(t *testing.T) {
	assert.Equal(t, []int{2, 3, 5, 7, 11}, firstPrimes(5))
	assert.Empty(t, firstPrimes(0))
}

func TestScatterMinimumShapeCount(t *testing.T) {
	g := &Group{}
	ctx := testContext(GenerationOptions{
		PatternType: "scatter",
		Complexity:  fptr(1),
		Density:     fptr(1),
		Repetition:  fptr(0.1),
	}, 1)
	res := generateScatter(g, ctx)
	assert.Equal(t, 3, res.Elements)
	assert.Equal(t, 3, g.count())
}

func TestBranchingHonorsNodeCap(t *testing.T) {
	g := &Group{}
	ctx := testContext(GenerationOptions{
		PatternType:  "branch",
		Complexity:   fptr(10),
		Density:      fptr(100),
		MaxRecursion: iptr(30),
	}, 42)
	res := generateBranching(g, ctx)
	assert.LessOrEqual(t, res.Elements, maxNodes)
	assert.LessOrEqual(t, g.count(), maxNodes)
	assert.Greater(t, res.Elements, 0)
}

func TestQuadtreeHonorsNodeCap(t *testing.T) {
	g := &Group{}
	ctx := testContext(GenerationOptions{
		PatternType:  "quadtree",
		Complexity:   fptr(10),
		Density:      fptr(100),
		MaxRecursion: iptr(30),
	}, 42)
	res := generateQuadtree(g, ctx)
	assert.LessOrEqual(t, res.Elements, maxNodes)
	assert.LessOrEqual(t, g.count(), maxNodes)
	assert.Greater(t, res.Elements, 0)
}

func TestEveryStrategyProducesElements(t *testing.T) {
	for name, strategy := range strategies {
		g := &Group{}
		ctx := testContext(GenerationOptions{PatternType: name}, 7)
		res := strategy(g, ctx)
		assert.Greater(t, res.Elements, 0, "strategy %s drew nothing", name)
		assert.Greater(t, g.count(), 0, "strategy %s left an empty group", name)
	}
}

func TestEveryStrategyToleratesEmptyPalette(t *testing.T) {
	for name, strategy := range strategies {
		g := &Group{}
		ctx := newGenContext(GenerationOptions{PatternType: name}.withDefaults(),
			nil, newLCG(7), newDefinitionRegistry())
		res := strategy(g, ctx)
		assert.Greater(t, res.Elements, 0, "strategy %s drew nothing with an empty palette", name)
	}
}

func TestWaveRowClampsTangentAsymptotes(t *testing.T) {
	o := GenerationOptions{
		LineWave:  fptr(20),
		LineRatio: fptr(1),
	}.withDefaults()
	rowY := 100.0

	// A phase on the asymptote makes raw tan samples arbitrarily large.
	pts := waveRowPoints(o, rowY, math.Pi/2, true)
	require.Len(t, pts, o.curveSteps+1)
	for _, p := range pts {
		require.False(t, math.IsNaN(p.y) || math.IsInf(p.y, 0))
		assert.LessOrEqual(t, math.Abs(p.y-rowY), 3*o.lineWave+o.lineArc)
	}
}

func TestWaveRowSineStaysWithinAmplitude(t *testing.T) {
	o := GenerationOptions{LineWave: fptr(15)}.withDefaults()
	rowY := 50.0
	for _, p := range waveRowPoints(o, rowY, 1.3, false) {
		assert.LessOrEqual(t, math.Abs(p.y-rowY), o.lineWave+o.lineArc)
	}
}

func TestLookupStrategyFallsBackOnUnknownType(t *testing.T) {
	g := &Group{}
	ctx := testContext(GenerationOptions{PatternType: "definitely-not-a-pattern"}, 7)
	res := lookupStrategy("definitely-not-a-pattern")(g, ctx)
	assert.Greater(t, res.Elements, 0)
}

func TestPrimesSpiralTypeOverride(t *testing.T) {
	ulam := "ulam"
	grid := "grid"

	g := &Group{}
	res := generatePrimes(g, testContext(GenerationOptions{SpiralType: &ulam}, 3))
	assert.Equal(t, 1.0, res.Metrics["spiral"])

	g = &Group{}
	res = generatePrimes(g, testContext(GenerationOptions{SpiralType: &grid}, 3))
	assert.Equal(t, 0.0, res.Metrics["spiral"])
}

func TestRegularPolygonClosesOnItself(t *testing.T) {
	pts := regularPolygon(100, 100, 50, 0, 6)
	require.Len(t, pts, 6)
	// First vertex sits at rotation 0, radius to the right of center.
	assert.InDelta(t, 150, pts[0].x, 1e-9)
	assert.InDelta(t, 100, pts[0].y, 1e-9)
}

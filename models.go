package main

import "math"

// --- Generation Options ---

// GenerationOptions is the raw, JSON-facing parameter set for one generation
// pass. Numeric knobs are pointers so an absent field can be told apart from an
// explicit zero; withDefaults resolves every knob before any formula sees it.
type GenerationOptions struct {
	PatternType string `json:"pattern_type"`

	Complexity   *float64 `json:"complexity,omitempty"`
	Density      *float64 `json:"density,omitempty"`
	Repetition   *float64 `json:"repetition,omitempty"`
	MaxRecursion *int     `json:"max_recursion,omitempty"`
	StrokeWeight *float64 `json:"stroke_weight,omitempty"`
	Scale        *float64 `json:"scale,omitempty"`
	Opacity      *float64 `json:"opacity,omitempty"`
	LayerCount   *int     `json:"layer_count,omitempty"`

	RoseN       *float64 `json:"rose_n,omitempty"`
	CurveSteps  *int     `json:"curve_steps,omitempty"`
	OffsetX     *float64 `json:"offset_x,omitempty"`
	OffsetY     *float64 `json:"offset_y,omitempty"`
	GlobalAngle *float64 `json:"global_angle,omitempty"`

	LineSpacing *float64 `json:"line_spacing,omitempty"`
	LineRatio   *float64 `json:"line_ratio,omitempty"`
	LineWave    *float64 `json:"line_wave,omitempty"`
	LineArc     *float64 `json:"line_arc,omitempty"`

	LissajousA     *float64 `json:"lissajous_a,omitempty"`
	LissajousB     *float64 `json:"lissajous_b,omitempty"`
	LissajousPhase *float64 `json:"lissajous_phase,omitempty"` // multiple of pi

	SpiralType    *string  `json:"spiral_type,omitempty"` // "grid", "ulam" or "auto"
	SplineTension *float64 `json:"spline_tension,omitempty"`
	CurveMode     *string  `json:"curve_mode,omitempty"` // "straight" or "cubic"

	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	// Captured pointer coordinates; all nullable.
	CursorX *float64 `json:"cursor_x,omitempty"`
	CursorY *float64 `json:"cursor_y,omitempty"`
	VectorX *float64 `json:"vector_x,omitempty"`
	VectorY *float64 `json:"vector_y,omitempty"`

	PaletteName     string   `json:"palette,omitempty"`
	PaletteOverride []string `json:"palette_override,omitempty"`
	FillMode        string   `json:"fill_mode,omitempty"` // solid|gradient|pattern|none
	StrokeColor     string   `json:"stroke_color,omitempty"`
	BackgroundColor string   `json:"background_color,omitempty"`

	Animate       bool   `json:"animate,omitempty"`
	AnimationType string `json:"animation_type,omitempty"` // pulse|rotate|fade|morph

	Seed          string `json:"seed,omitempty"`
	UseTimeSeed   *bool  `json:"use_time_seed,omitempty"`
	UseCursorSeed *bool  `json:"use_cursor_seed,omitempty"`
}

// genOptions is the fully resolved, immutable per-pass parameter set. Every
// field holds a usable value; strategies never consult GenerationOptions.
type genOptions struct {
	patternType string

	complexity   float64
	density      float64
	repetition   float64
	maxRecursion int
	strokeWeight float64
	scale        float64
	opacity      float64
	layerCount   int

	roseN       float64
	curveSteps  int
	offsetX     float64
	offsetY     float64
	globalAngle float64

	lineSpacing float64
	lineRatio   float64
	lineWave    float64
	lineArc     float64

	lissA     float64
	lissB     float64
	lissPhase float64

	spiralType    string
	splineTension float64
	curveMode     string

	width  float64
	height float64

	cursor *point
	vector *point

	fillMode        string
	strokeColor     string
	backgroundColor string

	animationType string
}

// Helpers to read a pointer field or fall back to a default.
func getString(ptr *string, def string) string {
	if ptr != nil {
		return *ptr
	}
	return def
}
func getInt(ptr *int, def int) int {
	if ptr != nil {
		return *ptr
	}
	return def
}
func getFloat64(ptr *float64, def float64) float64 {
	if ptr != nil {
		return *ptr
	}
	return def
}
func getBool(ptr *bool, def bool) bool {
	if ptr != nil {
		return *ptr
	}
	return def
}

// Fallback knob values. Unset optional knobs never reach a formula raw.
const (
	defaultComplexity   = 5.0
	defaultDensity      = 50.0
	defaultRepetition   = 1.0
	defaultMaxRecursion = 4
	defaultStrokeWeight = 2.0
	defaultScale        = 1.0
	defaultOpacity      = 0.8
	defaultLayerCount   = 1
	defaultRoseN        = 4.0
	defaultCurveSteps   = 200
	defaultLineSpacing  = 24.0
	defaultLineRatio    = 0.5
	defaultTension      = 0.5
	defaultWidth        = 800.0
	defaultHeight       = 600.0
)

// withDefaults resolves the raw options into a complete genOptions value.
func (o GenerationOptions) withDefaults() genOptions {
	g := genOptions{
		patternType: o.PatternType,

		complexity:   clampFloat(getFloat64(o.Complexity, defaultComplexity), 1, 10),
		density:      clampFloat(getFloat64(o.Density, defaultDensity), 1, 100),
		repetition:   clampFloat(getFloat64(o.Repetition, defaultRepetition), 0.1, 10),
		maxRecursion: getInt(o.MaxRecursion, defaultMaxRecursion),
		strokeWeight: getFloat64(o.StrokeWeight, defaultStrokeWeight),
		scale:        getFloat64(o.Scale, defaultScale),
		opacity:      clampFloat(getFloat64(o.Opacity, defaultOpacity), 0, 1),
		layerCount:   getInt(o.LayerCount, defaultLayerCount),

		roseN:       getFloat64(o.RoseN, defaultRoseN),
		curveSteps:  getInt(o.CurveSteps, defaultCurveSteps),
		offsetX:     getFloat64(o.OffsetX, 0),
		offsetY:     getFloat64(o.OffsetY, 0),
		globalAngle: getFloat64(o.GlobalAngle, 0),

		lineSpacing: getFloat64(o.LineSpacing, defaultLineSpacing),
		lineRatio:   getFloat64(o.LineRatio, defaultLineRatio),
		lineWave:    getFloat64(o.LineWave, 0),
		lineArc:     getFloat64(o.LineArc, 0),

		lissA:     getFloat64(o.LissajousA, 3),
		lissB:     getFloat64(o.LissajousB, 2),
		lissPhase: getFloat64(o.LissajousPhase, 0.5),

		spiralType:    getString(o.SpiralType, "auto"),
		splineTension: getFloat64(o.SplineTension, defaultTension),
		curveMode:     getString(o.CurveMode, "cubic"),

		width:  getFloat64(o.Width, defaultWidth),
		height: getFloat64(o.Height, defaultHeight),

		fillMode:        o.FillMode,
		strokeColor:     o.StrokeColor,
		backgroundColor: o.BackgroundColor,
		animationType:   o.AnimationType,
	}

	if g.maxRecursion <= 0 {
		g.maxRecursion = defaultMaxRecursion
	}
	if g.strokeWeight <= 0 {
		g.strokeWeight = defaultStrokeWeight
	}
	if g.scale <= 0 {
		g.scale = defaultScale
	}
	if g.layerCount <= 0 {
		g.layerCount = defaultLayerCount
	}
	if g.curveSteps < 2 {
		g.curveSteps = defaultCurveSteps
	}
	if g.lineSpacing <= 0 {
		g.lineSpacing = defaultLineSpacing
	}
	if g.width <= 0 {
		g.width = defaultWidth
	}
	if g.height <= 0 {
		g.height = defaultHeight
	}
	if g.curveMode != pathStraight && g.curveMode != pathCubic {
		g.curveMode = pathCubic
	}
	if g.fillMode == "" {
		g.fillMode = fillSolid
	}
	if g.strokeColor == "" {
		g.strokeColor = "#333333"
	}
	if g.backgroundColor == "" {
		g.backgroundColor = "#FFFFFF"
	}
	if g.animationType == "" {
		g.animationType = animPulse
	}

	if o.CursorX != nil && o.CursorY != nil {
		g.cursor = &point{*o.CursorX, *o.CursorY}
	}
	if o.VectorX != nil && o.VectorY != nil {
		g.vector = &point{*o.VectorX, *o.VectorY}
	}
	return g
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// --- Result Records ---

// LayerResult reports what a single strategy invocation produced.
type LayerResult struct {
	Elements int                `json:"elements"`
	Metrics  map[string]float64 `json:"metrics,omitempty"`
}

// GenerationResult summarizes a whole pass.
type GenerationResult struct {
	Seed          int64         `json:"seed"`
	PatternType   string        `json:"pattern_type"`
	TotalElements int           `json:"total_elements"`
	Layers        []LayerResult `json:"layers"`
	Failed        bool          `json:"failed,omitempty"`
}

package main

import (
	"fmt"
	"log"
	"math"
	"time"
)

// Per-layer parameter decay. Each successive layer is simpler, sparser and
// fainter than the one below it, which reads as a receding stack.
const (
	decayComplexity   = 0.15
	decayDensity      = 0.15
	decayStrokeWeight = 0.25
	decayOpacity      = 0.20
	decayScale        = 0.10
)

func decayedOptions(base genOptions, layer int) genOptions {
	if layer == 0 {
		return base
	}
	o := base
	f := float64(layer)
	o.complexity = math.Max(1, base.complexity*(1-decayComplexity*f))
	o.density = math.Max(5, base.density*(1-decayDensity*f))
	o.strokeWeight = math.Max(0.3, base.strokeWeight*(1-decayStrokeWeight*f))
	o.opacity = math.Max(0.05, base.opacity*(1-decayOpacity*f))
	o.scale = math.Max(0.1, base.scale*(1-decayScale*f))
	return o
}

// Artwork is the product of one generation pass: the serialized document,
// the primitive tree and defs registry it was rendered from, the resolved
// options, and the pass statistics.
type Artwork struct {
	Doc     string
	Root    *Group
	Defs    *DefinitionRegistry
	Options genOptions
	Result  GenerationResult
}

// Generate runs one full generation pass: seed resolution, palette
// resolution, per-layer strategy invocation with parameter decay, and
// document serialization. It never returns an error; a pass-level failure is
// rendered as a single diagnostic element with zeroed statistics, per the
// engine contract that no input may terminate the host.
func Generate(opts GenerationOptions, paletteTable map[string][]string, now time.Time) Artwork {
	resolved := opts.withDefaults()
	pal := resolvePalette(opts.PaletteOverride, opts.PaletteName, paletteTable)
	seed := deriveSeed(opts.Seed, getBool(opts.UseTimeSeed, true), getBool(opts.UseCursorSeed, false),
		resolved.cursor, resolved.vector, now)
	rng := newLCG(seed)
	reg := newDefinitionRegistry()

	root := &Group{}
	result := GenerationResult{Seed: seed, PatternType: resolved.patternType}

	err := composeLayers(root, resolved, pal, rng, reg, &result)
	if err != nil {
		log.Printf("Error: generation pass failed: %v", err)
		root = diagnosticTree(resolved, err)
		reg = newDefinitionRegistry()
		result = GenerationResult{Seed: seed, PatternType: resolved.patternType, Failed: true}
	} else {
		result.TotalElements = root.count()
	}

	doc := renderDocument(root, reg, resolved.width, resolved.height, resolved.backgroundColor)
	return Artwork{Doc: doc, Root: root, Defs: reg, Options: resolved, Result: result}
}

// composeLayers builds one group per layer and dispatches the selected
// strategy into it. A panic anywhere below is converted into the single
// pass-level error.
func composeLayers(root *Group, o genOptions, pal []string, rng *lcg, reg *DefinitionRegistry, result *GenerationResult) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("layer composition panicked: %v", r)
		}
	}()

	strategy := lookupStrategy(o.patternType)
	cx, cy := o.width/2, o.height/2

	for layer := 0; layer < o.layerCount; layer++ {
		layerOpts := decayedOptions(o, layer)
		layerGroup := &Group{Transform: layerTransform(layerOpts, layer, cx, cy)}

		ctx := newGenContext(layerOpts, pal, rng, reg)
		layerResult := strategy(layerGroup, ctx)

		root.add(layerGroup)
		result.Layers = append(result.Layers, layerResult)
	}
	return nil
}

// layerTransform rotates a layer about the viewport center and offsets it
// cumulatively per layer index.
func layerTransform(o genOptions, layer int, cx, cy float64) string {
	var t string
	if o.globalAngle != 0 {
		t = rotateAttr(o.globalAngle, cx, cy)
	}
	dx := o.offsetX * float64(layer)
	dy := o.offsetY * float64(layer)
	if dx != 0 || dy != 0 {
		if t != "" {
			t += " "
		}
		t += fmt.Sprintf("translate(%.2f %.2f)", dx, dy)
	}
	return t
}

// diagnosticTree is the visible worst case: a single message centered in the
// viewport instead of artwork.
func diagnosticTree(o genOptions, err error) *Group {
	g := &Group{}
	g.add(&Rect{X: 0, Y: 0, W: o.width, H: o.height, Style: style{Fill: "#FDF2F2"}})
	g.add(&Text{
		X: o.width / 2, Y: o.height / 2, Size: 14,
		Content: fmt.Sprintf("generation failed: %v", err),
		Style:   style{Fill: "#B91C1C"},
	})
	return g
}

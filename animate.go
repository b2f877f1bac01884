package main

import (
	"fmt"
	"log"
	"math"
	"time"
)

const (
	animPulse  = "pulse"
	animRotate = "rotate"
	animFade   = "fade"
	animMorph  = "morph"
)

// animationCycle is the period of every oscillation type.
const animationCycle = 5 * time.Second

// Animator perturbs an already-generated tree per frame. It never mutates the
// snapshot it was given: each frame is a fresh copy derived from the base, so
// the host can re-render frames in any order. Stop/restart is idempotent.
type Animator struct {
	base     *Group
	animType string
	running  bool
}

func newAnimator(root *Group, animType string) *Animator {
	return &Animator{base: root.clone().(*Group), animType: animType}
}

func (a *Animator) Start() {
	a.running = true
}

func (a *Animator) Stop() {
	a.running = false
}

func (a *Animator) Running() bool {
	return a.running
}

// Frame derives the tree for the given elapsed time. The base phase cycles
// every animationCycle; each element is offset by its index so the motion
// desynchronizes across the drawing.
func (a *Animator) Frame(elapsed time.Duration) *Group {
	phase := math.Mod(elapsed.Seconds(), animationCycle.Seconds()) / animationCycle.Seconds()
	frame := a.base.clone().(*Group)
	idx := 0
	animateGroup(frame, phase, &idx, a.animType)
	return frame
}

func animateGroup(g *Group, phase float64, idx *int, animType string) {
	for _, child := range g.Children {
		if sub, ok := child.(*Group); ok {
			animateGroup(sub, phase, idx, animType)
			continue
		}
		animateElement(child, phase, *idx, animType)
		*idx++
	}
}

// animateElement applies one oscillation to one primitive. The mutation is
// locally isolated: a malformed primitive logs and is skipped, never aborting
// the frame.
func animateElement(p Primitive, phase float64, index int, animType string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: skipping animation of element %d: %v", index, r)
		}
	}()

	st := p.styleRef()
	if st == nil {
		return
	}

	// Per-element phase offset.
	ph := math.Mod(phase+float64(index)*0.05, 1)
	cx, cy := p.center()

	switch animType {
	case animRotate:
		st.Transform = rotateAttr(ph*360*float64(index%3+1), cx, cy)
	case animFade:
		st.Opacity = math.Max(0.1, 0.5+0.5*math.Cos(2*math.Pi*ph))
	case animMorph:
		factor := 1 + 0.5*math.Sin(2*math.Pi*ph)
		if st.StrokeWidth <= 0 {
			st.StrokeWidth = 1
		}
		st.StrokeWidth *= factor
	default: // pulse
		s := 1 + 0.15*math.Sin(2*math.Pi*ph)
		st.Transform = fmt.Sprintf("translate(%.2f %.2f) scale(%.3f) translate(%.2f %.2f)", cx, cy, s, -cx, -cy)
	}
}

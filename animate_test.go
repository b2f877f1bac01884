package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderGroup(g *Group) string {
	var buf bytes.Buffer
	g.render(&buf)
	return buf.String()
}

func animTestTree() *Group {
	root := &Group{}
	inner := &Group{}
	inner.add(&Circle{CX: 10, CY: 10, R: 5, Style: style{Fill: "#264653", Opacity: 0.8}})
	inner.add(&Rect{X: 40, Y: 40, W: 20, H: 20, Style: style{Fill: "#2A9D8F", StrokeWidth: 2, Opacity: 0.8}})
	root.add(inner)
	root.add(&Line{X1: 0, Y1: 0, X2: 100, Y2: 100, Style: style{Stroke: "#E9C46A", StrokeWidth: 1}})
	return root
}

func TestAnimatorFrameDoesNotMutateBase(t *testing.T) {
	root := animTestTree()
	before := renderGroup(root)

	a := newAnimator(root, animPulse)
	_ = a.Frame(1 * time.Second)
	_ = a.Frame(3 * time.Second)

	assert.Equal(t, before, renderGroup(root), "source tree must stay untouched")
}

func TestAnimatorFramesAreReproducible(t *testing.T) {
	a := newAnimator(animTestTree(), animRotate)
	f1 := a.Frame(1500 * time.Millisecond)
	f2 := a.Frame(1500 * time.Millisecond)
	assert.Equal(t, renderGroup(f1), renderGroup(f2))
}

func TestAnimatorPhaseWrapsAtCycle(t *testing.T) {
	a := newAnimator(animTestTree(), animPulse)
	f1 := a.Frame(500 * time.Millisecond)
	f2 := a.Frame(animationCycle + 500*time.Millisecond)
	assert.Equal(t, renderGroup(f1), renderGroup(f2))
}

func TestAnimatorPulseAddsTransforms(t *testing.T) {
	a := newAnimator(animTestTree(), animPulse)
	doc := renderGroup(a.Frame(1 * time.Second))
	assert.Contains(t, doc, "scale(")
}

func TestAnimatorRotateAddsRotation(t *testing.T) {
	a := newAnimator(animTestTree(), animRotate)
	doc := renderGroup(a.Frame(700 * time.Millisecond))
	assert.Contains(t, doc, "rotate(")
}

func TestAnimatorFadeKeepsOpacityFloor(t *testing.T) {
	a := newAnimator(animTestTree(), animFade)
	for _, elapsed := range []time.Duration{0, time.Second, 2 * time.Second, 2500 * time.Millisecond, 4 * time.Second} {
		frame := a.Frame(elapsed)
		for _, child := range flattenPrimitives(frame) {
			st := child.styleRef()
			require.NotNil(t, st)
			assert.GreaterOrEqual(t, st.Opacity, 0.1)
			assert.LessOrEqual(t, st.Opacity, 1.0)
		}
	}
}

func TestAnimatorMorphKeepsStrokePositive(t *testing.T) {
	a := newAnimator(animTestTree(), animMorph)
	frame := a.Frame(3750 * time.Millisecond) // trough of the sine
	for _, child := range flattenPrimitives(frame) {
		assert.Greater(t, child.styleRef().StrokeWidth, 0.0)
	}
}

func TestAnimatorStartStop(t *testing.T) {
	a := newAnimator(animTestTree(), animPulse)
	assert.False(t, a.Running())
	a.Start()
	assert.True(t, a.Running())
	a.Start() // idempotent
	assert.True(t, a.Running())
	a.Stop()
	a.Stop()
	assert.False(t, a.Running())
}

func flattenPrimitives(g *Group) []Primitive {
	var out []Primitive
	for _, child := range g.Children {
		if sub, ok := child.(*Group); ok {
			out = append(out, flattenPrimitives(sub)...)
			continue
		}
		out = append(out, child)
	}
	return out
}

// Package decay implements a Gaussian decay curve that scores a value by its
// distance from an origin. Values inside the offset band around the origin
// score 1.0; beyond it the score falls along a bell curve, reaching Decay at
// Scale past the band edge.
package decay

import "math"

const (
	// DefaultDecay is the score a value receives at Scale past the offset band
	// when NewGauss is used.
	DefaultDecay = 0.5
	// DefaultOffset is the half-width of the flat band used by NewGauss.
	DefaultOffset = 0.0
)

// Gauss is an immutable Gaussian decay function. The zero value is not
// useful; build one with NewGauss, NewGaussWithDecay or NewValidatedGauss.
//
// Evaluate only produces a proper decay curve when Scale > 0,
// 0 < Decay < 1 and Offset >= 0. The plain constructors do not check this:
// a zero scale yields NaN or 0 and a decay outside (0, 1) yields a curve that
// is flat or grows. Use Validate or NewValidatedGauss to fail fast instead.
type Gauss struct {
	origin float64
	scale  float64
	decay  float64
	offset float64
}

// NewGauss returns a decay function with DefaultDecay and DefaultOffset.
func NewGauss(origin, scale float64) Gauss {
	return NewGaussWithDecay(origin, scale, DefaultDecay, DefaultOffset)
}

// NewGaussWithDecay returns a decay function with every parameter explicit.
// Parameters are stored as given.
func NewGaussWithDecay(origin, scale, decay, offset float64) Gauss {
	return Gauss{
		origin: origin,
		scale:  scale,
		decay:  decay,
		offset: offset,
	}
}

func (g Gauss) Origin() float64 { return g.origin }
func (g Gauss) Scale() float64  { return g.scale }
func (g Gauss) Decay() float64  { return g.decay }
func (g Gauss) Offset() float64 { return g.offset }

// Distance returns how far value lies outside the offset band, or 0 when it
// lies inside it.
func (g Gauss) Distance(value float64) float64 {
	return math.Max(0, math.Abs(value-g.origin)-g.offset)
}

// Evaluate returns the score for value in (0, 1]. It is exactly 1.0 inside the
// offset band and exactly Decay at Scale past the band edge.
//
// score = exp(distance² / scale² · ln(decay))
func (g Gauss) Evaluate(value float64) float64 {
	// Dividing before squaring keeps distance == scale at exactly ln(decay).
	r := g.Distance(value) / g.scale
	return math.Exp(r * r * math.Log(g.decay))
}

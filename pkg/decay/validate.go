package decay

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is wrapped by every error Validate returns.
var ErrInvalidParameter = errors.New("invalid decay parameter")

// NewValidatedGauss is NewGaussWithDecay followed by Validate.
func NewValidatedGauss(origin, scale, decay, offset float64) (Gauss, error) {
	g := NewGaussWithDecay(origin, scale, decay, offset)
	if err := g.Validate(); err != nil {
		return Gauss{}, err
	}
	return g, nil
}

// Validate reports whether g describes a proper decay curve: finite origin,
// finite positive scale, decay strictly inside (0, 1) and a finite,
// non-negative offset.
func (g Gauss) Validate() error {
	switch {
	case !finite(g.origin):
		return fmt.Errorf("%w: origin must be finite, got %v", ErrInvalidParameter, g.origin)
	case !finite(g.scale) || g.scale <= 0:
		return fmt.Errorf("%w: scale must be finite and > 0, got %v", ErrInvalidParameter, g.scale)
	case !(g.decay > 0 && g.decay < 1):
		return fmt.Errorf("%w: decay must be in (0, 1), got %v", ErrInvalidParameter, g.decay)
	case !finite(g.offset) || g.offset < 0:
		return fmt.Errorf("%w: offset must be finite and >= 0, got %v", ErrInvalidParameter, g.offset)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

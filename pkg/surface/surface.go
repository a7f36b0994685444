// Package surface defines output rendering for evaluated decay samples.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"fmt"
	"io"

	"github.com/gaussdecay/gaussdecay/pkg/decay"
)

// Renderer produces formatted output from a Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, report *Report) error
}

// Params mirrors the parameters of the decay function that produced a Report.
type Params struct {
	Origin float64 `json:"origin"`
	Scale  float64 `json:"scale"`
	Decay  float64 `json:"decay"`
	Offset float64 `json:"offset"`
}

// Sample is one evaluated input value.
type Sample struct {
	Value    float64
	Distance float64 // distance past the offset band
	Score    float64
}

// Report is a set of samples evaluated against one decay function.
type Report struct {
	Params  Params
	Samples []Sample
}

// NewReport evaluates g at each value, in order.
func NewReport(g decay.Gauss, values []float64) *Report {
	r := &Report{
		Params: Params{
			Origin: g.Origin(),
			Scale:  g.Scale(),
			Decay:  g.Decay(),
			Offset: g.Offset(),
		},
		Samples: make([]Sample, 0, len(values)),
	}
	for _, v := range values {
		r.Samples = append(r.Samples, Sample{
			Value:    v,
			Distance: g.Distance(v),
			Score:    g.Evaluate(v),
		})
	}
	return r
}

// ForFormat returns the renderer for an output format name.
// precision is the number of decimals text output prints.
func ForFormat(format string, precision int) (Renderer, error) {
	switch format {
	case "text", "":
		return &TerminalRenderer{Precision: precision}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}

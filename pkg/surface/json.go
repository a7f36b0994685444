package surface

import (
	"encoding/json"
	"io"
	"math"
)

// JSONRenderer marshals a Report to indented JSON.
// Non-finite numbers are written as null.
type JSONRenderer struct{}

type jsonReport struct {
	Params  Params       `json:"params"`
	Samples []jsonSample `json:"samples"`
}

type jsonSample struct {
	Value    *float64 `json:"value"`
	Distance *float64 `json:"distance"`
	Score    *float64 `json:"score"`
}

func (r *JSONRenderer) Render(w io.Writer, report *Report) error {
	out := jsonReport{
		Params:  report.Params,
		Samples: make([]jsonSample, 0, len(report.Samples)),
	}
	for _, s := range report.Samples {
		out.Samples = append(out.Samples, jsonSample{
			Value:    finiteOrNil(s.Value),
			Distance: finiteOrNil(s.Distance),
			Score:    finiteOrNil(s.Score),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func finiteOrNil(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

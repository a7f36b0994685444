package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/gaussdecay/gaussdecay/pkg/surface"
)

func newCurveCmd() *cobra.Command {
	var (
		flags  decayFlags
		from   float64
		to     float64
		points int
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Sample the decay curve across a range",
		Long: `Scores evenly spaced values between --from and --to. The range defaults to
two band-plus-scale widths on each side of the origin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, &flags)
			if err != nil {
				return err
			}
			lo, hi := defaultRange(s)
			if cmd.Flags().Changed("from") {
				lo = from
			}
			if cmd.Flags().Changed("to") {
				hi = to
			}
			return runCurve(cmd, s, lo, hi, points)
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64Var(&from, "from", 0, "First sampled value (default: origin - 2*(offset+scale))")
	cmd.Flags().Float64Var(&to, "to", 0, "Last sampled value (default: origin + 2*(offset+scale))")
	cmd.Flags().IntVar(&points, "points", 21, "Number of samples")

	return cmd
}

func defaultRange(s *session) (float64, float64) {
	w := 2 * (s.fn.Offset() + s.fn.Scale())
	return s.fn.Origin() - w, s.fn.Origin() + w
}

func runCurve(cmd *cobra.Command, s *session, from, to float64, points int) error {
	values, err := sampleRange(from, to, points)
	if err != nil {
		return err
	}
	s.logger.Debug("sampling curve", "from", from, "to", to, "points", points)
	return s.renderer.Render(cmd.OutOrStdout(), surface.NewReport(s.fn, values))
}

// sampleRange returns n evenly spaced values from lo to hi inclusive.
func sampleRange(lo, hi float64, n int) ([]float64, error) {
	switch {
	case n < 1:
		return nil, fmt.Errorf("points must be >= 1, got %d", n)
	case n == 1:
		return []float64{lo}, nil
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

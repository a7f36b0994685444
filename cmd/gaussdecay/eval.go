package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gaussdecay/gaussdecay/pkg/surface"
)

func newEvalCmd() *cobra.Command {
	var flags decayFlags

	cmd := &cobra.Command{
		Use:   "eval [values...]",
		Short: "Score each value",
		Long: `Scores each value given as an argument. With no arguments, reads
whitespace-separated values from stdin.`,
		Example: `  gaussdecay eval --origin 40 --scale 5 --offset 5 40 47.5 50
  seq 30 60 | gaussdecay eval --origin 40 --scale 5 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, &flags)
			if err != nil {
				return err
			}
			return runEval(cmd, s, args)
		},
	}
	flags.register(cmd)

	return cmd
}

func runEval(cmd *cobra.Command, s *session, args []string) error {
	var (
		values []float64
		err    error
	)
	if len(args) > 0 {
		values, err = parseValues(args)
	} else {
		values, err = readValues(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	s.logger.Debug("evaluating", "count", len(values))
	return s.renderer.Render(cmd.OutOrStdout(), surface.NewReport(s.fn, values))
}

func parseValues(fields []string) ([]float64, error) {
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func readValues(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}
	return parseValues(fields)
}

package surface

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// TerminalRenderer renders a Report as an aligned, colored table with a
// bar per sample.
type TerminalRenderer struct {
	Precision int // decimals for scores
}

const barWidth = 30

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func scoreColor(score float64) string {
	if noColor() {
		return ""
	}
	switch {
	case math.IsNaN(score) || score > 1:
		return colorRed
	case score >= 0.5:
		return colorGreen
	case score >= 0.1:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, report *Report) error {
	p := report.Params

	// Header
	fmt.Fprintf(w, "%s\n",
		bold(fmt.Sprintf("Gaussian decay: origin %s, scale %s, decay %s, offset %s",
			formatNum(p.Origin, -1), formatNum(p.Scale, -1),
			formatNum(p.Decay, -1), formatNum(p.Offset, -1))))

	if len(report.Samples) == 0 {
		fmt.Fprintln(w, "No values.")
		return nil
	}
	fmt.Fprintln(w)

	values := make([]string, len(report.Samples))
	width := len("value")
	for i, s := range report.Samples {
		values[i] = formatNum(s.Value, -1)
		if len(values[i]) > width {
			width = len(values[i])
		}
	}

	fmt.Fprintf(w, "  %s  %s\n", dim(fmt.Sprintf("%*s", width, "value")), dim("score"))
	for i, s := range report.Samples {
		score := formatNum(s.Score, r.Precision)
		fmt.Fprintf(w, "  %*s  %s  %s\n",
			width, values[i],
			colored(score, scoreColor(s.Score)),
			dim(bar(s.Score)))
	}

	return nil
}

// formatNum prints f with prec decimals, or the shortest exact form when
// prec is negative. Non-finite values print as NaN, +Inf or -Inf.
func formatNum(f float64, prec int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}

// bar draws score as a horizontal bar of barWidth cells, clamped to [0, 1].
func bar(score float64) string {
	if math.IsNaN(score) {
		return ""
	}
	n := int(math.Round(math.Min(1, math.Max(0, score)) * barWidth))
	return strings.Repeat("█", n) + strings.Repeat("·", barWidth-n)
}

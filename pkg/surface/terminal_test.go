package surface_test

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/gaussdecay/gaussdecay/pkg/decay"
	"github.com/gaussdecay/gaussdecay/pkg/surface"
)

func sampleReport() *surface.Report {
	g := decay.NewGaussWithDecay(40, 5, 0.5, 5)
	return surface.NewReport(g, []float64{40, 47.5, 50, 60})
}

func TestNewReport(t *testing.T) {
	r := sampleReport()

	if r.Params != (surface.Params{Origin: 40, Scale: 5, Decay: 0.5, Offset: 5}) {
		t.Errorf("unexpected params %+v", r.Params)
	}
	if len(r.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(r.Samples))
	}
	if r.Samples[0].Score != 1.0 || r.Samples[0].Distance != 0 {
		t.Errorf("origin sample = %+v, want score 1 distance 0", r.Samples[0])
	}
	if r.Samples[1].Distance != 2.5 {
		t.Errorf("47.5 distance = %v, want 2.5", r.Samples[1].Distance)
	}
	if r.Samples[2].Score != 0.5 {
		t.Errorf("50 score = %v, want 0.5", r.Samples[2].Score)
	}
}

func TestTerminalRenderer_BasicOutput(t *testing.T) {
	// Set NO_COLOR to avoid ANSI codes in test comparison
	t.Setenv("NO_COLOR", "1")

	r := &surface.TerminalRenderer{Precision: 4}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "origin 40, scale 5, decay 0.5, offset 5") {
		t.Errorf("expected parameter header, got:\n%s", output)
	}
	for _, want := range []string{"1.0000", "0.8409", "0.5000", "0.0020"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected score %s in output:\n%s", want, output)
		}
	}
	if !strings.Contains(output, strings.Repeat("█", 30)) {
		t.Error("expected a full bar for the origin sample")
	}
	if strings.Contains(output, "\033[") {
		t.Error("expected no ANSI escape codes with NO_COLOR set")
	}
}

func TestTerminalRenderer_NoValues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer

	report := surface.NewReport(decay.NewGauss(0, 1), nil)
	if err := r.Render(&buf, report); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No values") {
		t.Error("expected 'No values' message")
	}
}

func TestTerminalRenderer_NonFinite(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := &surface.TerminalRenderer{Precision: 2}
	var buf bytes.Buffer

	report := surface.NewReport(decay.NewGaussWithDecay(0, 0, 0.5, 0), []float64{0})
	if err := r.Render(&buf, report); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), "NaN") {
		t.Errorf("expected NaN score, got:\n%s", buf.String())
	}
}

func TestTerminalRenderer_ColorRespected(t *testing.T) {
	// Setenv restores the original value on cleanup.
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	r := &surface.TerminalRenderer{Precision: 4}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[") {
		t.Error("expected ANSI escape codes when NO_COLOR is not set")
	}
}

func TestJSONRenderer(t *testing.T) {
	r := &surface.JSONRenderer{}
	var buf bytes.Buffer

	report := sampleReport()
	report.Samples = append(report.Samples, surface.Sample{Value: 1, Score: math.NaN()})

	if err := r.Render(&buf, report); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var got struct {
		Params  surface.Params `json:"params"`
		Samples []struct {
			Value    *float64 `json:"value"`
			Distance *float64 `json:"distance"`
			Score    *float64 `json:"score"`
		} `json:"samples"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if got.Params.Origin != 40 || got.Params.Offset != 5 {
		t.Errorf("unexpected params %+v", got.Params)
	}
	if len(got.Samples) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(got.Samples))
	}
	if got.Samples[2].Score == nil || *got.Samples[2].Score != 0.5 {
		t.Errorf("sample at 50 should score 0.5, got %v", got.Samples[2].Score)
	}
	if got.Samples[4].Score != nil {
		t.Errorf("NaN score should encode as null, got %v", *got.Samples[4].Score)
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{format: "text", want: "*surface.TerminalRenderer"},
		{format: "", want: "*surface.TerminalRenderer"},
		{format: "json", want: "*surface.JSONRenderer"},
		{format: "yaml", wantErr: true},
	}
	for _, tc := range tests {
		r, err := surface.ForFormat(tc.format, 4)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ForFormat(%q) expected error", tc.format)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ForFormat(%q) unexpected error: %v", tc.format, err)
		}
		switch r.(type) {
		case *surface.TerminalRenderer:
			if tc.want != "*surface.TerminalRenderer" {
				t.Errorf("ForFormat(%q) = %T, want %s", tc.format, r, tc.want)
			}
		case *surface.JSONRenderer:
			if tc.want != "*surface.JSONRenderer" {
				t.Errorf("ForFormat(%q) = %T, want %s", tc.format, r, tc.want)
			}
		}
	}
}

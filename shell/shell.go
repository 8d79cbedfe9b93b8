// Package shell is the terminal form: it collects the six vitals, runs one
// inference cycle per submission and prints the results.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"maternalrisk/risk"
)

type Predictor interface {
	Models() []string
	Compare(in risk.Input) (*risk.Comparison, error)
	Predict(model string, in risk.Input) (*risk.PredictionResult, error)
}

type Options struct {
	Language string
	// Model restricts output to one registered model.
	Model  string
	Logger *zap.Logger
}

type Shell struct {
	scanner *bufio.Scanner
	out     io.Writer
	engine  Predictor
	p       *message.Printer
	model   string
	logger  *zap.Logger
}

func New(in io.Reader, out io.Writer, engine Predictor, opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		scanner: bufio.NewScanner(in),
		out:     out,
		engine:  engine,
		p:       newPrinter(opts.Language),
		model:   opts.Model,
		logger:  logger,
	}
}

// Run repeats form, predict, render until the operator quits or input ends.
func (s *Shell) Run() error {
	s.renderBanner()
	for {
		in, ok := s.readForm()
		if !ok {
			return s.scanner.Err()
		}
		s.p.Fprintf(s.out, "Press Enter to predict, q to quit: ")
		line, ok := s.readLine()
		if !ok || strings.EqualFold(strings.TrimSpace(line), "q") {
			return s.scanner.Err()
		}
		s.Submit(in)
	}
}

func (s *Shell) renderBanner() {
	models := s.engine.Models()
	if s.model != "" {
		models = []string{s.model}
	}
	fmt.Fprintln(s.out, s.p.Sprintf("Maternal health risk prediction"))
	s.p.Fprintf(s.out, "Models in use: %s\n", strings.Join(models, ", "))
	fmt.Fprintln(s.out, s.p.Sprintf("How to use:"))
	fmt.Fprintln(s.out, "  1.", s.p.Sprintf("Enter a value for each patient field; press Enter to keep the default."))
	fmt.Fprintln(s.out, "  2.", s.p.Sprintf("Press Enter at the predict prompt."))
	fmt.Fprintln(s.out, "  3.", s.p.Sprintf("Read the predicted risk level and its probabilities."))
}

func (s *Shell) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Shell) readForm() (risk.Input, bool) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.p.Sprintf("Patient data"))
	values := make(map[string]*float64, risk.NumFeatures)
	for _, f := range Fields() {
		for {
			fmt.Fprintf(s.out, "  %s [%s-%s] (%s): ", f.Label, f.format(f.Min), f.format(f.Max), f.format(f.Default))
			line, ok := s.readLine()
			if !ok {
				return risk.Input{}, false
			}
			value, present, err := f.Parse(line)
			if err != nil {
				fmt.Fprintf(s.out, "  %v\n", err)
				continue
			}
			if present {
				v := value
				values[f.Name] = &v
			}
			break
		}
	}
	return buildInput(values), true
}

func buildInput(values map[string]*float64) risk.Input {
	asInt := func(v *float64) *int {
		if v == nil {
			return nil
		}
		i := int(*v)
		return &i
	}
	return risk.Input{
		Age:         asInt(values["Age"]),
		SystolicBP:  asInt(values["SystolicBP"]),
		DiastolicBP: asInt(values["DiastolicBP"]),
		BS:          values["BS"],
		BodyTemp:    values["BodyTemp"],
		HeartRate:   asInt(values["HeartRate"]),
	}
}

// Submit runs one inference cycle and renders its outcome, or the error in
// its place.
func (s *Shell) Submit(in risk.Input) {
	var (
		results []risk.PredictionResult
		rows    []risk.ComparisonRow
	)
	if s.model != "" {
		result, err := s.engine.Predict(s.model, in)
		if err != nil {
			s.renderError(err)
			return
		}
		results = []risk.PredictionResult{*result}
	} else {
		cmp, err := s.engine.Compare(in)
		if err != nil {
			s.renderError(err)
			return
		}
		results = cmp.Results
		rows = cmp.Rows()
	}

	for _, r := range results {
		s.renderResult(r)
	}
	if len(rows) > 1 {
		s.renderComparison(rows)
	}
	s.renderNotes()
}

func (s *Shell) renderError(err error) {
	var missing *risk.MissingInputError
	if errors.As(err, &missing) {
		s.p.Fprintf(s.out, "Please complete all input fields (missing: %s).\n", strings.Join(missing.Fields, ", "))
		return
	}
	s.logger.Error("prediction failed", zap.Error(err), zap.Bool("artifact_mismatch", risk.IsArtifactMismatch(err)))
	s.p.Fprintf(s.out, "Unexpected error: %v\n", err)
}

// Severity maps a label to its indicator.
func Severity(label string) string {
	l := strings.ToLower(label)
	switch {
	case strings.HasPrefix(l, "high"):
		return "[!!]"
	case strings.HasPrefix(l, "mid"):
		return "[!]"
	default:
		return "[ok]"
	}
}

func (s *Shell) renderResult(r risk.PredictionResult) {
	fmt.Fprintln(s.out)
	s.p.Fprintf(s.out, "Risk level (%s): %s %s\n", r.Model, r.Label, Severity(r.Label))
	fmt.Fprintln(s.out, s.p.Sprintf("Probability per risk level:"))
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, cp := range r.Probabilities {
		s.p.Fprintf(tw, "  %s\t%.2f\t\n", cp.Label, cp.Probability)
	}
	tw.Flush()
}

func (s *Shell) renderComparison(rows []risk.ComparisonRow) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.p.Sprintf("Model comparison:"))
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  "+s.p.Sprintf("Model\tPrediction\tConfidence\t"))
	for _, row := range rows {
		s.p.Fprintf(tw, "  %s\t%s\t%.2f%%\t\n", row.Model, row.Label, row.Confidence*100)
	}
	tw.Flush()
}

func (s *Shell) renderNotes() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.p.Sprintf("Notes:"))
	fmt.Fprintln(s.out, "  *", s.p.Sprintf("This tool is a demonstration and must not replace a professional medical diagnosis."))
	fmt.Fprintln(s.out, "  *", s.p.Sprintf("The models were trained on historical data and may perform differently on new data."))
}

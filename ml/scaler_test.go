package ml

import (
	"errors"
	"math"
	"testing"
)

func TestStandardScalerTransform(t *testing.T) {
	s := &StandardScaler{Mean: []float64{10, 0}, Scale: []float64{2, 0}}
	out, err := s.Transform([]float64{14, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 2 || out[1] != 3 {
		t.Fatalf("unexpected scaled vector: %v", out)
	}
}

func TestStandardScalerWidthMismatch(t *testing.T) {
	s := &StandardScaler{Mean: []float64{1, 2}, Scale: []float64{1, 1}}
	_, err := s.Transform([]float64{1})
	var scalingErr *ScalingError
	if !errors.As(err, &scalingErr) {
		t.Fatalf("expected ScalingError, got %v", err)
	}
	if scalingErr.Expected != 2 || scalingErr.Got != 1 {
		t.Fatalf("unexpected error fields: %+v", scalingErr)
	}
}

func TestMinMaxScalerTransform(t *testing.T) {
	s := &MinMaxScaler{DataMin: []float64{0, 5}, DataMax: []float64{10, 5}}
	if err := s.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := s.Transform([]float64{2.5, 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(out[0]-0.25) > 1e-12 || out[1] != 0 {
		t.Fatalf("unexpected scaled vector: %v", out)
	}
}

func TestLabelEncoder(t *testing.T) {
	enc, err := NewLabelEncoder([]string{"High Risk", "Low Risk", "Mid Risk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	label, err := enc.InverseTransform(2)
	if err != nil || label != "Mid Risk" {
		t.Fatalf("unexpected decode: %q %v", label, err)
	}
	var unknown *UnknownClassError
	if _, err := enc.InverseTransform(3); !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownClassError, got %v", err)
	}
	if _, err := enc.InverseTransform(-1); !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownClassError, got %v", err)
	}
	if idx, err := enc.Transform("Low Risk"); err != nil || idx != 1 {
		t.Fatalf("unexpected encode: %d %v", idx, err)
	}
	if _, err := NewLabelEncoder([]string{"a", "a"}); err == nil {
		t.Fatal("expected duplicate class error")
	}
}

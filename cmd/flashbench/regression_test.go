package main

import "testing"

func TestLinearFitExactLine(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 5, 7, 9}

	slope, intercept := linearFit(xs, ys)
	if diff := slope - 2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("slope = %v, want 2", slope)
	}
	if diff := intercept - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("intercept = %v, want 1", intercept)
	}
}

func TestLinearFitEmpty(t *testing.T) {
	slope, intercept := linearFit(nil, nil)
	if slope != 0 || intercept != 0 {
		t.Errorf("linearFit(nil, nil) = (%v, %v), want (0, 0)", slope, intercept)
	}
}

func TestLinearFitConstantX(t *testing.T) {
	xs := []float64{5, 5, 5}
	ys := []float64{1, 2, 3}

	slope, intercept := linearFit(xs, ys)
	if slope != 0 {
		t.Errorf("slope = %v, want 0 for degenerate x", slope)
	}
	if diff := intercept - 2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("intercept = %v, want 2", intercept)
	}
}

package cqi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGini(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{42}, 0},
		{"perfect equality", []float64{10, 10, 10, 10}, 0},
		{"zero sum", []float64{0, 0, 0}, 1},
		{"total concentration of two", []float64{100, 0}, 0.5},
		{"half and half", []float64{30, 10}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Gini(tt.values), 1e-9)
		})
	}
}

func TestGini_ScaleInvariant(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{10, 20, 30, 40}
	assert.InDelta(t, Gini(a), Gini(b), 1e-9)
}

func TestGini_Bounded(t *testing.T) {
	for _, values := range [][]float64{
		{0, 0, 0, 500},
		{1, 1, 1, 1000},
		{7.3, 0.1, 42.9},
	} {
		g := Gini(values)
		assert.GreaterOrEqual(t, g, 0.0)
		assert.LessOrEqual(t, g, 1.0)
	}
}

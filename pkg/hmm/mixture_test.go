package hmm

import (
	"math"
	"testing"
)

func TestMixtureEqualComponentsMatchesSingle(t *testing.T) {
	g := mustScalarGaussian(t, 0, 1)
	mix, err := NewMixture([]float64{0.5, 0.5}, []*Gaussian{
		mustScalarGaussian(t, 0, 1),
		mustScalarGaussian(t, 0, 1),
	})
	if err != nil {
		t.Fatalf("NewMixture: %v", err)
	}

	for _, x := range []float64{-2, 0, 0.5, 3} {
		got := mix.LogLikelihood([]float64{x})
		want := g.LogLikelihood([]float64{x})
		if !closeEnough(got, want, 1e-12) {
			t.Fatalf("at %g: expected %g, got %g", x, want, got)
		}
	}
}

func TestMixtureWeightedDensity(t *testing.T) {
	c0 := mustScalarGaussian(t, 0, 1)
	c1 := mustScalarGaussian(t, 5, 1)
	mix, err := NewMixture([]float64{0.3, 0.7}, []*Gaussian{c0, c1})
	if err != nil {
		t.Fatalf("NewMixture: %v", err)
	}

	for _, x := range []float64{0, 2.5, 5} {
		obs := []float64{x}
		got := mix.LogLikelihood(obs)
		want := math.Log(0.3*math.Exp(c0.LogLikelihood(obs)) + 0.7*math.Exp(c1.LogLikelihood(obs)))
		if !closeEnough(got, want, 1e-12) {
			t.Fatalf("at %g: expected %g, got %g", x, want, got)
		}
	}
}

func TestMixtureDimensionality(t *testing.T) {
	mix, err := NewMixture([]float64{1}, []*Gaussian{mustGaussian2D(t)})
	if err != nil {
		t.Fatalf("NewMixture: %v", err)
	}
	if got := mix.Dimensionality(); got != 2 {
		t.Fatalf("Dimensionality: expected 2, got %d", got)
	}
}

func TestNewMixtureRejectsBadInput(t *testing.T) {
	g0 := mustScalarGaussian(t, 0, 1)
	g1 := mustScalarGaussian(t, 5, 1)

	tests := []struct {
		name       string
		weights    []float64
		components []*Gaussian
	}{
		{"no components", []float64{}, []*Gaussian{}},
		{"weight count", []float64{1}, []*Gaussian{g0, g1}},
		{"weights sum", []float64{0.4, 0.5}, []*Gaussian{g0, g1}},
		{"negative weight", []float64{1.5, -0.5}, []*Gaussian{g0, g1}},
		{"nil component", []float64{0.5, 0.5}, []*Gaussian{g0, nil}},
		{"dimensionality clash", []float64{0.5, 0.5}, []*Gaussian{g0, mustGaussian2D(t)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewMixture(tc.weights, tc.components); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMixtureZeroWeightComponent(t *testing.T) {
	// A zero weight is a legitimate structural constraint: the component is
	// simply unreachable, not an error.
	g0 := mustScalarGaussian(t, 0, 1)
	g1 := mustScalarGaussian(t, 100, 1)
	mix, err := NewMixture([]float64{1, 0}, []*Gaussian{g0, g1})
	if err != nil {
		t.Fatalf("NewMixture: %v", err)
	}

	got := mix.LogLikelihood([]float64{0})
	want := g0.LogLikelihood([]float64{0})
	if !closeEnough(got, want, 1e-12) {
		t.Fatalf("expected %g, got %g", want, got)
	}
}

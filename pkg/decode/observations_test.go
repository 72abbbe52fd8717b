package decode

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNormalizeColumnVectorTransposed(t *testing.T) {
	// Five 1-D observations passed as a 5x1 column vector.
	raw := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})

	obs, err := Normalize(raw, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !obs.Transposed() {
		t.Error("Transposed() = false, want true")
	}
	if obs.Dim() != 1 || obs.Len() != 5 {
		t.Fatalf("got %dx%d, want 1x5", obs.Dim(), obs.Len())
	}
	x := make([]float64, 1)
	for i, want := range []float64{1, 2, 3, 4, 5} {
		if obs.Col(x, i); x[0] != want {
			t.Errorf("observation %d = %g, want %g", i, x[0], want)
		}
	}
}

func TestNormalizeRowVectorUntouched(t *testing.T) {
	raw := mat.NewDense(1, 5, []float64{1, 2, 3, 4, 5})

	obs, err := Normalize(raw, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if obs.Transposed() {
		t.Error("Transposed() = true for an already oriented matrix")
	}
	if obs.Dim() != 1 || obs.Len() != 5 {
		t.Fatalf("got %dx%d, want 1x5", obs.Dim(), obs.Len())
	}
}

func TestNormalizeSingleColumnMultiDim(t *testing.T) {
	// One time step of a 3-D observation: a single column against a 3-D
	// model must pass through without the transpose correction.
	raw := mat.NewDense(3, 1, []float64{1, 2, 3})

	obs, err := Normalize(raw, 3)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if obs.Transposed() {
		t.Error("Transposed() = true, want false: heuristic only fires for expectedDim == 1")
	}
	if obs.Dim() != 3 || obs.Len() != 1 {
		t.Fatalf("got %dx%d, want 3x1", obs.Dim(), obs.Len())
	}
}

func TestNormalizeDimensionMismatch(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		cols     int
		dim      int
		wantGot  int
		wantWant int
	}{
		{"too few rows", 2, 4, 3, 2, 3},
		{"too many rows", 4, 4, 2, 4, 2},
		{"single row against wider model", 1, 7, 2, 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := mat.NewDense(tc.rows, tc.cols, nil)
			_, err := Normalize(raw, tc.dim)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("err = %v, want ErrDimensionMismatch", err)
			}
			var dimErr *DimensionError
			if !errors.As(err, &dimErr) {
				t.Fatalf("err = %v, want *DimensionError", err)
			}
			if dimErr.Got != tc.wantGot || dimErr.Want != tc.wantWant {
				t.Errorf("DimensionError = {Got: %d, Want: %d}, want {Got: %d, Want: %d}",
					dimErr.Got, dimErr.Want, tc.wantGot, tc.wantWant)
			}
		})
	}
}

func TestNormalizeNilMatrix(t *testing.T) {
	if _, err := Normalize(nil, 1); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("err = %v, want ErrEmptySequence", err)
	}
}

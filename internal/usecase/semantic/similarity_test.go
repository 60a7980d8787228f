package semantic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	require.InDelta(t, 1.0, Cosine([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-9)
	require.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	require.InDelta(t, -1.0, Cosine([]float64{1, 1}, []float64{-1, -1}), 1e-9)
}

func TestCosine_DegenerateInputs(t *testing.T) {
	require.Equal(t, 0.0, Cosine([]float64{1, 2}, []float64{1, 2, 3}))
	require.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 2}))
	require.Equal(t, 0.0, Cosine(nil, nil))
}

func TestCosineMatrix(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 1}}
	b := [][]float64{{1, 0}, {0, 1}, {1, 1}}

	m := CosineMatrix(a, b)

	require.Len(t, m, 2)
	require.Len(t, m[0], 3)
	require.InDelta(t, 1.0, m[0][0], 1e-9)
	require.InDelta(t, 0.0, m[0][1], 1e-9)
	require.InDelta(t, m[0][2], m[1][2], 1e-9)
}

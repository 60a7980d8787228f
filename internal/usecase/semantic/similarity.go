package semantic

import (
	"context"
	"math"
)

// Embedder maps a text collection to one fixed-length vector per text such
// that cosine similarity approximates semantic closeness. Deterministic for
// identical input text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// CosineMatrix computes the rows×cols matrix of cosine similarities between
// two ordered vector collections: row i, column j = similarity(a[i], b[j]).
func CosineMatrix(a, b [][]float64) [][]float64 {
	matrix := make([][]float64, len(a))
	for i := range a {
		matrix[i] = make([]float64, len(b))
		for j := range b {
			matrix[i][j] = Cosine(a[i], b[j])
		}
	}
	return matrix
}

// Cosine calculates cosine similarity between two vectors. Mismatched or
// zero vectors yield 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

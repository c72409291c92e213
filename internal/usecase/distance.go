package usecase

import (
	"fmt"
	"math"

	"github.com/example/id-verify/internal/faceengine"
)

// Supported distance metrics.
const (
	MetricCosine      = "cosine"
	MetricEuclidean   = "euclidean"
	MetricEuclideanL2 = "euclidean_l2"
)

// Distance computes the dissimilarity between two embeddings under the given
// metric. Both embeddings must have been produced by the same model and
// detector configuration; anything else is a programming error upstream.
func Distance(metric string, a, b *faceengine.Embedding) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("distance: nil embedding")
	}
	if a.Model != b.Model || a.Detector != b.Detector {
		return 0, fmt.Errorf("distance: embeddings not comparable (%s/%s vs %s/%s)",
			a.Model, a.Detector, b.Model, b.Detector)
	}
	if len(a.Vector) != len(b.Vector) {
		return 0, fmt.Errorf("distance: dimension mismatch (%d vs %d)", len(a.Vector), len(b.Vector))
	}
	if len(a.Vector) == 0 {
		return 0, fmt.Errorf("distance: empty embedding")
	}

	switch metric {
	case MetricCosine:
		return cosineDistance(a.Vector, b.Vector)
	case MetricEuclidean:
		return euclideanDistance(a.Vector, b.Vector), nil
	case MetricEuclideanL2:
		return euclideanDistance(l2Normalize(a.Vector), l2Normalize(b.Vector)), nil
	default:
		return 0, fmt.Errorf("distance: unknown metric %q", metric)
	}
}

// cosineDistance is 1 - a.b/(|a||b|), accumulated in float64 so that
// near-duplicate vectors do not lose the small residual to cancellation.
func cosineDistance(a, b []float64) (float64, error) {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("distance: zero-norm embedding")
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB)), nil
}

func euclideanDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func l2Normalize(v []float64) []float64 {
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return v
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

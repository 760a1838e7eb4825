package recall

import (
	"math"
	"testing"
)

func TestCosineSimilarityIdentical(t *testing.T) {
	a := []float64{0.3, 0.5, 0.2}
	sim := cosineSimilarity(a, a)
	if math.Abs(sim-1.0) > 1e-6 {
		t.Errorf("identical vectors must score ~1, got %v", sim)
	}
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	sim := cosineSimilarity([]float64{1, 0}, []float64{0, 1})
	if math.Abs(sim) > 1e-6 {
		t.Errorf("orthogonal vectors must score ~0, got %v", sim)
	}
}

func TestCosineSimilarityOpposite(t *testing.T) {
	sim := cosineSimilarity([]float64{1, 0}, []float64{-1, 0})
	if math.Abs(sim+1.0) > 1e-6 {
		t.Errorf("opposite vectors must score ~-1, got %v", sim)
	}
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	sim := cosineSimilarity([]float64{0, 0, 0}, []float64{1, 2, 3})
	if math.IsNaN(sim) || math.IsInf(sim, 0) {
		t.Errorf("zero vector must yield a finite similarity, got %v", sim)
	}
	if sim != 0 {
		t.Errorf("zero vector similarity must be 0, got %v", sim)
	}
}

package recall

import "math"

// similarityEpsilon keeps the division finite when a stored vector is
// all-zero.
const similarityEpsilon = 1e-8

// cosineSimilarity computes dot(a, b) / (||a|| * ||b|| + ε). Both
// vectors must have the same length; callers check dimensions first.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + similarityEpsilon)
}

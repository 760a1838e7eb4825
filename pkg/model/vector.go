package model

import (
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// EnsureVector normalizes an embedding payload of unknown shape into a
// flat []float64. Accepted shapes are a flat sequence of numbers, a
// string holding a JSON array, a nested sequence of sequences, or (as
// a failure case) a single scalar.
//
// A nested payload keeps only its first inner vector; any further rows
// are discarded. This matches the reference behavior for batch-shaped
// responses, where a single embedding is always expected.
func EnsureVector(v any) ([]float64, error) {
	if s, ok := v.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, goerr.Wrap(ErrMalformedResponse, "embedding is a string but not valid JSON",
				goerr.V("value", clip(s)))
		}
		v = decoded
	}

	switch vec := v.(type) {
	case []float64:
		return append([]float64{}, vec...), nil

	case []float32:
		out := make([]float64, len(vec))
		for i, f := range vec {
			out[i] = float64(f)
		}
		return out, nil

	case [][]float64:
		// An empty sequence is an empty vector, same as the []any case.
		if len(vec) == 0 {
			return []float64{}, nil
		}
		return append([]float64{}, vec[0]...), nil

	case [][]float32:
		if len(vec) == 0 {
			return []float64{}, nil
		}
		return EnsureVector(vec[0])

	case []any:
		if len(vec) == 0 {
			return []float64{}, nil
		}
		if isSequence(vec[0]) {
			// Batch-shaped payload: keep the first row only.
			return EnsureVector(vec[0])
		}
		return castElements(vec)

	case float64, float32, int, int32, int64, uint, json.Number:
		return nil, goerr.Wrap(ErrScalarEmbedding, "a single number is not an embedding",
			goerr.V("value", vec))

	default:
		return nil, goerr.Wrap(ErrMalformedResponse, "unsupported embedding shape",
			goerr.V("type", fmt.Sprintf("%T", v)))
	}
}

func isSequence(v any) bool {
	switch v.(type) {
	case []any, []float64, []float32, [][]float64, [][]float32:
		return true
	default:
		return false
	}
}

func castElements(vec []any) ([]float64, error) {
	out := make([]float64, len(vec))
	for i, e := range vec {
		switch n := e.(type) {
		case float64:
			out[i] = n
		case float32:
			out[i] = float64(n)
		case int:
			out[i] = float64(n)
		case int32:
			out[i] = float64(n)
		case int64:
			out[i] = float64(n)
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, goerr.Wrap(ErrMalformedResponse, "non-numeric embedding element",
					goerr.V("index", i), goerr.V("value", n.String()))
			}
			out[i] = f
		default:
			return nil, goerr.Wrap(ErrMalformedResponse, "non-numeric embedding element",
				goerr.V("index", i), goerr.V("type", fmt.Sprintf("%T", e)))
		}
	}
	return out, nil
}

func clip(s string) string {
	const max = 64
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

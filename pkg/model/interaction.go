package model

import "time"

// InteractionMeta is the metadata record stored alongside each
// interaction. Input and output are duplicated here for convenience of
// callers that only read metadata.
type InteractionMeta struct {
	Input     string    `firestore:"input" json:"input"`
	Output    string    `firestore:"output" json:"output"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
	UserID    string    `firestore:"user_id" json:"user_id"`
}

// Interaction is one (input, output) exchange with its embedding. It is
// the only unit that can be appended to a log, so all four sequences
// grow together.
type Interaction struct {
	Input     string
	Output    string
	Embedding []float64
	Meta      *InteractionMeta
}

// ScoredInteraction is an interaction's metadata with a similarity
// score attached by a recall query.
type ScoredInteraction struct {
	InteractionMeta
	Similarity float64 `json:"similarity"`
}

// InteractionLog holds the per-entity history as four index-aligned
// sequences, matching the persisted schema. Interaction i is described
// by position i in each sequence.
type InteractionLog struct {
	Inputs     []string
	Outputs    []string
	Embeddings [][]float64
	Metadata   []*InteractionMeta
}

// AlignedLen returns the effective log length: the minimum over the
// four sequences. Partial writes can leave the sequences with
// different lengths, and operations must not fail on that.
func (x *InteractionLog) AlignedLen() int {
	n := len(x.Inputs)
	for _, m := range []int{len(x.Outputs), len(x.Embeddings), len(x.Metadata)} {
		if m < n {
			n = m
		}
	}
	return n
}

// Aligned reports whether all four sequences have the same length.
func (x *InteractionLog) Aligned() bool {
	n := len(x.Inputs)
	return len(x.Outputs) == n && len(x.Embeddings) == n && len(x.Metadata) == n
}

// Append adds one interaction to the end of all four sequences.
func (x *InteractionLog) Append(it Interaction) {
	x.Inputs = append(x.Inputs, it.Input)
	x.Outputs = append(x.Outputs, it.Output)
	x.Embeddings = append(x.Embeddings, it.Embedding)
	x.Metadata = append(x.Metadata, it.Meta)
}

// RemoveAt deletes position i from each sequence that contains it,
// preserving the relative order of the remaining elements. Callers
// must bounds-check against AlignedLen first.
func (x *InteractionLog) RemoveAt(i int) {
	if i >= 0 && i < len(x.Inputs) {
		x.Inputs = append(x.Inputs[:i], x.Inputs[i+1:]...)
	}
	if i >= 0 && i < len(x.Outputs) {
		x.Outputs = append(x.Outputs[:i], x.Outputs[i+1:]...)
	}
	if i >= 0 && i < len(x.Embeddings) {
		x.Embeddings = append(x.Embeddings[:i], x.Embeddings[i+1:]...)
	}
	if i >= 0 && i < len(x.Metadata) {
		x.Metadata = append(x.Metadata[:i], x.Metadata[i+1:]...)
	}
}

// Clone returns a deep copy of the log.
func (x *InteractionLog) Clone() *InteractionLog {
	out := &InteractionLog{
		Inputs:     append([]string{}, x.Inputs...),
		Outputs:    append([]string{}, x.Outputs...),
		Embeddings: make([][]float64, 0, len(x.Embeddings)),
		Metadata:   make([]*InteractionMeta, 0, len(x.Metadata)),
	}
	for _, e := range x.Embeddings {
		out.Embeddings = append(out.Embeddings, append([]float64{}, e...))
	}
	for _, m := range x.Metadata {
		if m == nil {
			out.Metadata = append(out.Metadata, nil)
			continue
		}
		cp := *m
		out.Metadata = append(out.Metadata, &cp)
	}
	return out
}

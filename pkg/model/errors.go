package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrMissingCredential is returned when the embedding backend has no
	// API key or credential configured.
	ErrMissingCredential = goerr.New("missing credential for embedding service")

	// ErrTimeout is returned when a remote call exceeds its deadline.
	ErrTimeout = goerr.New("remote call timed out")

	// ErrRemoteService is returned when the embedding service responds
	// with a non-success status. Wrapped errors carry "status" and
	// "body" values.
	ErrRemoteService = goerr.New("embedding service error")

	// ErrMalformedResponse is returned when a payload cannot be
	// normalized into an embedding vector.
	ErrMalformedResponse = goerr.New("malformed embedding payload")

	// ErrScalarEmbedding is returned when a single number arrives where
	// a vector is required.
	ErrScalarEmbedding = goerr.New("scalar value is not a valid embedding")

	// ErrEmptyInput is returned when empty text is given to the
	// embedding client or to an append operation.
	ErrEmptyInput = goerr.New("input text is empty")

	// ErrEntityNotFound is returned when the referenced entity does not
	// exist in the repository.
	ErrEntityNotFound = goerr.New("entity not found")

	// ErrIndexOutOfRange is returned for interaction indexes outside
	// the aligned length of the log.
	ErrIndexOutOfRange = goerr.New("interaction index out of range")

	// ErrDimensionMismatch is returned when a stored embedding has a
	// different dimensionality than the query embedding.
	ErrDimensionMismatch = goerr.New("embedding dimension mismatch")
)

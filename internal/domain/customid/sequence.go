package customid

import (
	"context"

	"github.com/google/uuid"
)

// SequenceProvider supplies the next ordinal for sequence elements of one
// inventory's identifier format.
//
// The implementation derives the ordinal from the live item count rather
// than an atomically reserved counter. Two concurrent creations against the
// same inventory can observe the same count and compose colliding
// identifiers; the collision is caught by the uniqueness check and the
// persistence layer's unique constraint at insert time, never prevented up
// front. Callers must treat a late duplicate as a normal, retryable
// conflict.
type SequenceProvider interface {
	NextSequence(ctx context.Context, inventoryID uuid.UUID) (int, error)
}

package segmented

import "errors"

var (
	// ErrSegmentSize reports a segment size that is not a power of two
	// greater than one. Raised at construction only.
	ErrSegmentSize = errors.New("segmented: segment size must be a power of two greater than one")

	// ErrNegativeLength reports a negative requested length. Raised at
	// construction only.
	ErrNegativeLength = errors.New("segmented: negative length")

	// ErrFixedSize is the panic value of every structural mutation invoked on
	// a fixed-size list. All rejecting implementations share this one value,
	// so callers that already handle "tried to grow a fixed-size array" need
	// no special case for the segmented kind.
	ErrFixedSize = errors.New("segmented: collection has a fixed size")

	// ErrKindMismatch reports a structural comparison against a value that is
	// not an array of the same kind.
	ErrKindMismatch = errors.New("segmented: structural compare against a different kind")

	// ErrLengthMismatch reports a structural comparison between arrays of
	// different lengths.
	ErrLengthMismatch = errors.New("segmented: structural compare against a different length")

	// ErrNilComparer reports a missing element comparer.
	ErrNilComparer = errors.New("segmented: nil comparer")

	// ErrNilHasher reports a missing element hash function.
	ErrNilHasher = errors.New("segmented: nil hasher")
)

package copri

import "errors"

// Sentinel errors for the input-domain and invariant-violation error
// kinds described by the algorithm. They are never returned from the
// exported entry points directly (the original degrades and carries on
// rather than aborting); they exist so a Logger, or a caller wrapping
// one, can match on error class with errors.Is.
var (
	// ErrZeroInput is reported when a zero appears in the input to CB.
	// Zero has no prime factorization and is not a valid member of S.
	ErrZeroInput = errors.New("copri: zero is not a valid input to cb")

	// ErrEmptyArray is reported where a non-empty Array is required:
	// ArraySplit, ArrayFindFactor, ArrayFindFactors, ArrayCB.
	ErrEmptyArray = errors.New("copri: operation requires a non-empty array")

	// ErrSplitSizeMismatch is reported when Split returns a result of
	// the wrong cardinality against P inside CBExtend. This indicates a
	// bug in a lower layer; CBExtend does not let it corrupt the base
	// it is building.
	ErrSplitSizeMismatch = errors.New("copri: split output size does not match p")
)

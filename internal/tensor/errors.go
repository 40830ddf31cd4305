package tensor

import "errors"

// Errors reported when tensors violate an operation's contract.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrDTypeMismatch = errors.New("dtype mismatch")
	ErrAllocation    = errors.New("tensor allocation failed")
)

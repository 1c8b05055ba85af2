package dense

import "errors"

var (
	ErrBadShape          = errors.New("dense: invalid shape")
	ErrIndexOutOfRange   = errors.New("dense: index out of range")
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")
	ErrNonSquare         = errors.New("dense: matrix is not square")
)

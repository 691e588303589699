package glm

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by the checked accessors (At, SetAt) when the
// index is outside [0, N).
var ErrOutOfRange = errors.New("glm: index out of range")

// IndexError describes a failed checked access. It matches ErrOutOfRange
// with errors.Is.
type IndexError struct {
	Type  string // e.g. "Vec3f", "Mat4d", "Quatf"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s.At(%d): %v [0,%d)", e.Type, e.Index, ErrOutOfRange, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// checkIndex returns nil if 0 <= i < n, and an *IndexError otherwise.
func checkIndex(typ string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Type: typ, Index: i, Len: n}
	}
	return nil
}

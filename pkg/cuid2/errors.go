package cuid2

import (
	"errors"
	"fmt"
)

// ErrLengthOutOfRange reports a requested length outside [MinLength, MaxLength].
// The caller can correct the argument and retry; nothing is retried internally.
var ErrLengthOutOfRange = fmt.Errorf("cuid2: length must be between %d and %d", MinLength, MaxLength)

// ErrHash reports a failure of the SHA3-512 primitive. Not expected in normal
// operation and surfaced as a hard failure.
var ErrHash = errors.New("cuid2: sha3-512 digest failed")

package crud

import "errors"

// ErrNotFound is the only error the engine produces on its own; everything
// else bubbles up from the storage layer untouched.
var ErrNotFound = errors.New("record not found")

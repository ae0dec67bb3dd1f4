package core

import "errors"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// ErrZeroLength is the panic value raised when a zero-length vector is normalized
var ErrZeroLength = errors.New("tried to normalize a zero-length vector")

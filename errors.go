package gctp

import "fmt"

// ConfigurationError reports an illegal projection setup: an unknown or
// unsupported projection code, an illegal zone, spheroid or unit code, or an
// incompatible parameter combination.  It is always detected when the
// transformation is created, never during a transform call.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return e.msg }

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// ConvergenceError reports that one of the iterative latitude solvers
// exceeded its fixed iteration limit.  Retrying the same input will fail
// again; callers must treat the coordinate as unprojectable.
type ConvergenceError struct {
	msg string
}

func (e *ConvergenceError) Error() string { return e.msg }

func convergenceErrorf(format string, args ...any) error {
	return &ConvergenceError{msg: fmt.Sprintf(format, args...)}
}

// GeometryError reports a mathematically degenerate input, such as a point
// that projects to infinity or a pole on the wrong side of a conic
// projection's cone.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string { return e.msg }

func geometryErrorf(format string, args ...any) error {
	return &GeometryError{msg: fmt.Sprintf(format, args...)}
}

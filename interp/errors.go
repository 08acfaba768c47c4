package interp

import "errors"

var (
	// ErrNoStart is returned when no start production was given and the
	// grammar does not have exactly one unreferenced production.
	ErrNoStart = errors.New("no start production")

	// ErrUndefined is returned for a reference to a production the grammar
	// does not define.
	ErrUndefined = errors.New("undefined production")

	// ErrBadRange is returned for a range whose bounds are not single
	// characters in ascending order.
	ErrBadRange = errors.New("invalid range")
)

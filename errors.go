package gosiegl

import "errors"

var (
	// ErrDimension is returned when a slice does not have the number of
	// components the target type needs.
	ErrDimension = errors.New("gosiegl: wrong number of components")

	// ErrUnsupportedOrder is returned by Euler conversions for any rotation
	// order other than OrderXYZ.
	ErrUnsupportedOrder = errors.New("gosiegl: unsupported euler order")

	ErrZeroAxis       = errors.New("gosiegl: rotation axis has zero length")
	ErrInvalidTerrain = errors.New("gosiegl: invalid terrain options")
	ErrUnknownMesh    = errors.New("gosiegl: unknown mesh kind")
)

package layout

import "errors"

var (
	// ErrInvalidGridSpec is returned when a cell or viewport dimension is not
	// positive, or when not a single full cell fits the viewport.
	ErrInvalidGridSpec = errors.New("invalid grid spec")

	// ErrItemIndexOutOfRange is returned for layout queries outside [0, itemCount).
	ErrItemIndexOutOfRange = errors.New("item index out of range")

	// ErrInvalidItemCount is returned for a negative item count.
	ErrInvalidItemCount = errors.New("invalid item count")
)

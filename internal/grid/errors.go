package grid

import (
	"errors"
	"fmt"

	"github.com/san-kum/rain/internal/config"
)

// ErrDegenerateGeometry indicates a display too small to hold any column.
var ErrDegenerateGeometry = errors.New("grid: degenerate geometry")

// GeometryError records the display size that could not be laid out.
type GeometryError struct {
	Width, Height int
	Direction     config.Direction
	Wrapped       error
}

func (e *GeometryError) Error() string {
	msg := fmt.Sprintf("%v: %dx%d falling %s", ErrDegenerateGeometry, e.Width, e.Height, e.Direction)
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *GeometryError) Unwrap() []error {
	if e.Wrapped == nil {
		return []error{ErrDegenerateGeometry}
	}
	return []error{ErrDegenerateGeometry, e.Wrapped}
}

package grid

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFilterType = errors.New("unsupported filter type")
	ErrDropdownNotExpanded   = errors.New("dropdown menu did not expand")
	ErrInvalidRow            = errors.New("row positions start at 1")
	ErrInvalidDeletionMode   = errors.New("deletion mode position must not be negative")
)

// UnsupportedFilterTypeError is returned by FilterTable before any browser call is made.
type UnsupportedFilterTypeError struct {
	FilterType FilterType
	FilterBy   string
}

func (e *UnsupportedFilterTypeError) Error() string {
	return fmt.Sprintf("filter column not found: %s (filter type %q)", e.FilterBy, e.FilterType)
}

func (e *UnsupportedFilterTypeError) Is(target error) bool {
	return target == ErrUnsupportedFilterType
}

func checkRow(row int) error {
	if row < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRow, row)
	}
	return nil
}

package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrYearOutOfRange      = errors.New("year out of range")
	ErrMonthOutOfRange     = errors.New("month out of range")
	ErrDayOutOfRange       = errors.New("day out of range")
	ErrDayOfYearOutOfRange = errors.New("day of year out of range")
	ErrDayNumberOutOfRange = errors.New("day number out of range")

	ErrCalendarNotFound = errors.New("calendar not found")
	ErrDuplicateKey     = errors.New("calendar key already registered")
	ErrInvalidKey       = errors.New("invalid calendar key")

	ErrUnknownRule = errors.New("unknown Easter rule")
)

// RangeError reports a value outside its valid range. It unwraps to one of
// the ErrXxxOutOfRange sentinels.
type RangeError struct {
	Field    string
	Value    int64
	Min, Max int64
	Err      error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return e.Err }

func newRangeError[T ~int32 | ~int64](field string, value, lo, hi T, sentinel error) *RangeError {
	return &RangeError{
		Field: field,
		Value: int64(value),
		Min:   int64(lo),
		Max:   int64(hi),
		Err:   sentinel,
	}
}

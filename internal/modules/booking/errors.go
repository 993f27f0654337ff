package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrNotEditable             = errors.New("booking is not in draft")
	ErrWrongBookingType        = errors.New("operation does not match booking type")
	ErrNoPackageSelected       = errors.New("no package selected")
	ErrHoursExhausted          = errors.New("package hours exhausted")
	ErrNoBookingDates          = errors.New("package booking has no date entries")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

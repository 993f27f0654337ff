package invoice

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("invoice not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingNotBillable = errors.New("booking cannot be invoiced")
	ErrInvoiceExists      = errors.New("booking already has an invoice")
	ErrDuplicateReference = errors.New("payment reference already used")
	ErrInvoiceCancelled   = errors.New("invoice is cancelled")
	ErrNothingOutstanding = errors.New("invoice has no outstanding amount")
)

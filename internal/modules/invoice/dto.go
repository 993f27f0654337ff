package invoice

type CreateInvoiceRequest struct {
	BookingID int64  `json:"booking_id" validate:"required"`
	DueDate   string `json:"due_date"` // 2006-01-02, defaults to 30 days out
}

type AddPaymentRequest struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required"`
	Reference string  `json:"reference"`
	Date      string  `json:"date"` // 2006-01-02, defaults to today
}

// ScheduleInstallmentRequest books a future due date without money
// changing hands; the row participates in next-due resolution only.
type ScheduleInstallmentRequest struct {
	Date   string `json:"date" validate:"required"` // 2006-01-02
	Method string `json:"method"`
}

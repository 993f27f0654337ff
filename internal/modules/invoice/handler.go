package invoice

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studiobooking/internal/pkg/response"
	"studiobooking/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	inv := rg.Group("/invoices")
	{
		inv.POST("", h.Create)
		inv.GET("", h.List)
		inv.GET("/:id", h.Get)
		inv.POST("/:id/payments", h.AddPayment)
		inv.POST("/:id/installments", h.ScheduleInstallment)
		inv.POST("/:id/mark-paid", h.MarkAsPaid)
	}
	rg.GET("/bookings/:id/invoice", h.GetByBooking)
}

// RegisterAdminRoutes holds the destructive operations.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/invoices/:id/cancel", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	inv, err := h.service.CreateFromBooking(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, inv)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	inv, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) GetByBooking(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	inv, err := h.service.GetByBooking(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.service.ListInvoices(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) AddPayment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req AddPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	inv, err := h.service.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) ScheduleInstallment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req ScheduleInstallmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	inv, err := h.service.ScheduleInstallment(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) MarkAsPaid(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req struct {
		Method string `json:"method"`
	}
	_ = c.ShouldBindJSON(&req)

	inv, err := h.service.MarkAsPaid(c.Request.Context(), id, req.Method)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	inv, err := h.service.CancelInvoice(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return false
	}
	return true
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "INVOICE_NOT_FOUND", "invoice not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid invoice data")
	case errors.Is(err, ErrBookingNotBillable):
		response.Error(c, http.StatusConflict, "BOOKING_NOT_BILLABLE", "booking must be confirmed before invoicing")
	case errors.Is(err, ErrInvoiceExists):
		response.Error(c, http.StatusConflict, "INVOICE_EXISTS", "booking already has an invoice")
	case errors.Is(err, ErrDuplicateReference):
		response.Error(c, http.StatusConflict, "DUPLICATE_REFERENCE", "payment reference already used")
	case errors.Is(err, ErrInvoiceCancelled):
		response.Error(c, http.StatusConflict, "INVOICE_CANCELLED", "invoice is cancelled")
	case errors.Is(err, ErrNothingOutstanding):
		response.Error(c, http.StatusConflict, "NOTHING_OUTSTANDING", "invoice is already settled")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

package booking

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
	b := rg.Group("/bookings")
	{
		b.POST("", h.Create)
		b.GET("", h.List)
		b.GET("/:id", h.Get)
		b.PUT("/:id/photographer", h.SetPhotographer)
		b.POST("/:id/line-items", h.AddLineItem)
		b.DELETE("/:id/line-items/:serviceID", h.RemoveLineItem)
		b.PUT("/:id/schedule", h.Schedule)
		b.PUT("/:id/package", h.SelectPackage)
		b.DELETE("/:id/package", h.ClearPackage)
		b.POST("/:id/dates", h.AddPackageDate)
		b.DELETE("/:id/dates/:dateID", h.RemovePackageDate)
		b.POST("/:id/confirm", h.Confirm)
		b.POST("/:id/complete", h.Complete)
		b.POST("/:id/cancel", h.Cancel)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !h.bindJSON(c, &req) {
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.service.ListBookings(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) SetPhotographer(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req SetPhotographerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	b, err := h.service.SetPhotographer(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) AddLineItem(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req LineItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	b, err := h.service.AddLineItem(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) RemoveLineItem(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	serviceID, ok := h.pathID(c, "serviceID")
	if !ok {
		return
	}

	b, err := h.service.RemoveLineItem(c.Request.Context(), id, serviceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Schedule(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req ScheduleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	b, err := h.service.ScheduleService(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) SelectPackage(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req SelectPackageRequest
	if !h.bindJSON(c, &req) {
		return
	}

	b, err := h.service.SelectPackage(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ClearPackage(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.ClearPackage(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) AddPackageDate(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req PackageDateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	b, err := h.service.AddPackageDate(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) RemovePackageDate(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	dateID, ok := h.pathID(c, "dateID")
	if !ok {
		return
	}

	b, err := h.service.RemovePackageDate(c.Request.Context(), id, dateID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.ConfirmBooking(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.CompleteBooking(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req CancelBookingRequest
	if !h.bindJSON(c, &req) {
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
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

func (h *Handler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid booking data")
	case errors.Is(err, ErrNotEditable):
		response.Error(c, http.StatusConflict, "BOOKING_NOT_EDITABLE", "only draft bookings can be edited")
	case errors.Is(err, ErrWrongBookingType):
		response.Error(c, http.StatusConflict, "WRONG_BOOKING_TYPE", "operation does not match booking type")
	case errors.Is(err, ErrNoPackageSelected):
		response.Error(c, http.StatusConflict, "NO_PACKAGE_SELECTED", "no package selected for this booking")
	case errors.Is(err, ErrHoursExhausted):
		response.Error(c, http.StatusConflict, "HOURS_EXHAUSTED", "package hours are exhausted")
	case errors.Is(err, ErrNoBookingDates):
		response.Error(c, http.StatusConflict, "NO_BOOKING_DATES", "package booking needs at least one date")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "booking status does not allow this operation")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studiobooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.GetService)
	rg.GET("/packages", h.ListPackages)
	rg.GET("/packages/:id", h.GetPackage)
	rg.GET("/photographers", h.ListPhotographers)
	rg.GET("/photographers/:id", h.GetPhotographer)
	rg.GET("/photographers/:id/pricing", h.PreviewPricing)
}

func (h *Handler) ListServices(c *gin.Context) {
	list, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) ListPackages(c *gin.Context) {
	list, err := h.service.ListPackages(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetPackage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	pkg, err := h.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, pkg)
}

func (h *Handler) ListPhotographers(c *gin.Context) {
	list, err := h.service.ListPhotographers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetPhotographer(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	p, err := h.service.GetPhotographer(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) PreviewPricing(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	b2b := c.DefaultQuery("b2b", "true") == "true"

	preview, err := h.service.PreviewPricing(c.Request.Context(), id, b2b)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, preview)
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
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "service not found")
	case errors.Is(err, ErrPackageNotFound):
		response.Error(c, http.StatusNotFound, "PACKAGE_NOT_FOUND", "package not found")
	case errors.Is(err, ErrPhotographerNotFound):
		response.Error(c, http.StatusNotFound, "PHOTOGRAPHER_NOT_FOUND", "photographer not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

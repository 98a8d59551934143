package handler

import (
	"net/http"

	"github.com/gyeongmo89/samsip/internal/apierror"
	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateByName records an order keyed by supplier/item/unit names; unknown
// names are created on the fly.
func (h *OrdersHandler) CreateByName(c *gin.Context) {
	var req dto.OrderByNameRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateByName(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrdersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list orders"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) UpdateByName(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.OrderByNameRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateByName(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	deleted, err := h.svc.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}

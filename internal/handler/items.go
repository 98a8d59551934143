package handler

import (
	"net/http"

	"github.com/gyeongmo89/samsip/internal/apierror"
	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/service"

	"github.com/gin-gonic/gin"
)

type ItemsHandler struct{ svc service.ItemService }

func NewItemsHandler(svc service.ItemService) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

func (h *ItemsHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
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

func (h *ItemsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list items"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateItemRequest
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

func (h *ItemsHandler) BulkDelete(c *gin.Context) {
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

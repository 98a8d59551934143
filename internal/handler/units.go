package handler

import (
	"net/http"

	"github.com/gyeongmo89/samsip/internal/apierror"
	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/service"

	"github.com/gin-gonic/gin"
)

type UnitsHandler struct{ svc service.UnitService }

func NewUnitsHandler(svc service.UnitService) *UnitsHandler {
	return &UnitsHandler{svc: svc}
}

func (h *UnitsHandler) Create(c *gin.Context) {
	var req dto.CreateUnitRequest
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

func (h *UnitsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list units"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UnitsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateUnitRequest
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

func (h *UnitsHandler) BulkDelete(c *gin.Context) {
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

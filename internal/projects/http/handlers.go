package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pjmaster/project-api/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		h.fail(c, opList, "", err)
		return
	}
	if items == nil {
		items = []domain.Project{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	pjCd := c.Param("pjCd")

	p, err := h.store.Get(c.Request.Context(), pjCd)
	if err != nil {
		h.fail(c, opGet, pjCd, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, opCreate, "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	in := domain.CreateInput{
		PjCd:        req.PjCd,
		PjName:      req.PjName,
		BuCd:        req.BuCd,
		Year:        req.Year,
		PlanSecCd:   req.PlanSecCd,
		ConstTypeCd: req.ConstTypeCd,
		RegionCd:    req.RegionCd,
		CustomerCd:  req.CustomerCd,
		StartDate:   req.StartDate,
		TotalMM:     req.TotalMM,
		TotalConst:  req.TotalConst,
	}
	pjCd := ""
	if req.PjCd != nil {
		pjCd = *req.PjCd
	}
	if err := h.store.Create(c.Request.Context(), in); err != nil {
		h.fail(c, opCreate, pjCd, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgCreated})
}

func (h *Handler) update(c *gin.Context) {
	pjCd := c.Param("pjCd")

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, opUpdate, pjCd, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	in := domain.UpdateInput{PjName: req.PjName, BuCd: req.BuCd, Year: req.Year}
	if err := h.store.Update(c.Request.Context(), pjCd, in); err != nil {
		h.fail(c, opUpdate, pjCd, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUpdated})
}

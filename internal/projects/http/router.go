package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:pjCd", h.get)
	rg.POST("", h.create)
	rg.PUT("/:pjCd", h.update)
}

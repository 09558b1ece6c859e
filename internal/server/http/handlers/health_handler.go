package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	facade HealthFacade
}

func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		_ = c.Error(err)
		writeError(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shayangolmezerji/ChargeAPI/internal/config"
	"github.com/shayangolmezerji/ChargeAPI/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides health endpoint.
type HealthHandler struct {
	resellerCfg *config.ResellerConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(resellerCfg *config.ResellerConfig) *HealthHandler {
	return &HealthHandler{resellerCfg: resellerCfg}
}

// GetHealth responds with service status and reseller configuration state.
// No upstream call is made; the reseller has no cheap ping endpoint.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"reseller": gin.H{
			"configured": h.resellerCfg.Validate() == nil,
		},
	})
}

package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"immowaechter-http-service/internal/error/response"
)

// HealthCheckController serves liveness and readiness probes
type HealthCheckController struct {
	DB *gorm.DB
}

// NewHealthCheckController creates a health check controller instance
func NewHealthCheckController(db *gorm.DB) *HealthCheckController {
	return &HealthCheckController{DB: db}
}

// Ping is a plain liveness endpoint
// @Summary      Liveness probe
// @Description  Returns pong without touching any dependency
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Health reports readiness including the database connection
// @Summary      Readiness probe
// @Description  Returns service status and database connectivity
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthCheckController) Health(c *gin.Context) {
	dbStatus := "ok"
	if h.DB != nil {
		if sqlDB, err := h.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "unreachable"
		}
	} else {
		dbStatus = "not configured"
	}

	response.Success(c, gin.H{
		"status":   "healthy",
		"database": dbStatus,
	})
}

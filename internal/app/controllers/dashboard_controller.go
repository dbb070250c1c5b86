package controllers

import (
	"errors"
	"strconv"
	"time"

	"immowaechter-http-service/internal/domain/services"
	"immowaechter-http-service/internal/domain/services/container"
	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceDashboardController defines the dashboard controller interface
type InterfaceDashboardController interface {
	GetRiskSummary()
	GetRiskTrend()
}

// DashboardController handles portfolio dashboard requests
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc returns a Gin handler dispatching dashboard requests
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getRiskSummary":
			controller.GetRiskSummary()
		case "getRiskTrend":
			controller.GetRiskTrend()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Ungültige Methode", nil)
		}
	}
}

// 1. GetRiskSummary aggregates the owner's portfolio by risk level
// @Summary      Risk summary
// @Description  Count all components of the authenticated owner per risk level and list the critical ones
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /dashboard/risk-summary [get]
func (c *DashboardController) GetRiskSummary() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	dashboardService := c.Container.GetDashboardService()
	summary, err := dashboardService.RiskSummary(ownerID, time.Now())
	if err != nil {
		config.Error("failed to build risk summary for owner %d: %v", ownerID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, summary)
}

// 2. GetRiskTrend returns the historical critical and legal counts
// @Summary      Risk trend
// @Description  Return the critical and legal counts over the requested timeframe, weekly buckets from 90 days
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        timeframe query string false "Timeframe: 7d, 30d, 90d or 1y, defaults to 30d"
// @Param        propertyId query int false "Restrict to one property, omit for the whole portfolio"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /dashboard/risk-trend [get]
func (c *DashboardController) GetRiskTrend() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	timeframe := c.Ctx.DefaultQuery("timeframe", "30d")

	var propertyID *uint
	if raw := c.Ctx.Query("propertyId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.ParamError(c.Ctx, "Ungültige Immobilien-ID")
			return
		}
		id := uint(parsed)
		propertyID = &id
	}

	dashboardService := c.Container.GetDashboardService()
	points, err := dashboardService.RiskTrend(ownerID, propertyID, timeframe, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidTimeframe) {
			response.FailWithMessage(c.Ctx, code.ErrTimeframeInvalid, "Ungültiger Zeitraum, erwartet 7d, 30d, 90d oder 1y", nil)
			return
		}
		config.Error("failed to load risk trend for owner %d: %v", ownerID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"timeframe":  timeframe,
		"propertyId": propertyID,
		"points":     points,
	})
}

package controllers

import (
	"errors"
	"strconv"
	"time"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/services"
	"immowaechter-http-service/internal/domain/services/container"
	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceComponentController defines the component controller interface
type InterfaceComponentController interface {
	GetComponents()
	GetComponent()
	CreateComponent()
	UpdateComponent()
	DeleteComponent()
	LogMaintenance()
	GetMaintenanceHistory()
	GetComponentRisk()
}

// ComponentController handles component related requests
type ComponentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewComponentController creates a new component controller
func NewComponentController(ctx *gin.Context, container *container.ServiceContainer) *ComponentController {
	return &ComponentController{
		Ctx:       ctx,
		Container: container,
	}
}

// ComponentRequest represents a component create request
type ComponentRequest struct {
	PropertyID      uint      `json:"property_id" binding:"required" example:"1"`
	Type            string    `json:"type" binding:"required" example:"heating"`
	CustomName      string    `json:"custom_name" example:"Gastherme Keller"`
	LastMaintenance time.Time `json:"last_maintenance" binding:"required" example:"2025-06-01T00:00:00Z"`
}

// ComponentUpdateRequest represents a partial component update
type ComponentUpdateRequest struct {
	Type            string     `json:"type" example:"heating"`
	CustomName      string     `json:"custom_name" example:"Gastherme Keller"`
	LastMaintenance *time.Time `json:"last_maintenance" example:"2025-06-01T00:00:00Z"`
}

// MaintenanceRequest represents a maintenance completion event
type MaintenanceRequest struct {
	CompletedAt time.Time `json:"completed_at" binding:"required" example:"2026-08-15T00:00:00Z"`
	Note        string    `json:"note" example:"Jahreswartung durch Firma Huber"`
}

// HandleComponentFunc returns a Gin handler dispatching component requests
func HandleComponentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewComponentController(ctx, container)

		switch method {
		case "getComponents":
			controller.GetComponents()
		case "getComponent":
			controller.GetComponent()
		case "createComponent":
			controller.CreateComponent()
		case "updateComponent":
			controller.UpdateComponent()
		case "deleteComponent":
			controller.DeleteComponent()
		case "logMaintenance":
			controller.LogMaintenance()
		case "getMaintenanceHistory":
			controller.GetMaintenanceHistory()
		case "getComponentRisk":
			controller.GetComponentRisk()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Ungültige Methode", nil)
		}
	}
}

// failComponentError maps service errors to the right response
func (c *ComponentController) failComponentError(err error) {
	if errors.Is(err, services.ErrNotOwned) {
		response.FailWithMessage(c.Ctx, code.ErrPropertyAccessDenied, "Zugriff verweigert", nil)
		return
	}
	response.NotFound(c.Ctx, "Komponente nicht gefunden")
}

// 1. GetComponents lists the components of one property
// @Summary      List components
// @Description  List all components of a property owned by the authenticated owner
// @Tags         Component
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        propertyId query int true "Property ID"
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /components [get]
func (c *ComponentController) GetComponents() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	rawPropertyID, err := strconv.Atoi(c.Ctx.Query("propertyId"))
	if err != nil || rawPropertyID < 1 {
		response.ParamError(c.Ctx, "Ungültige Immobilien-ID")
		return
	}
	propertyID := uint(rawPropertyID)
	page, pageSize := paginationParams(c.Ctx)

	componentService := c.Container.GetComponentService()
	components, total, err := componentService.GetComponents(propertyID, ownerID, page, pageSize)
	if err != nil {
		c.failComponentError(err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        components,
	})
}

// 2. GetComponent returns a single component
// @Summary      Get component
// @Description  Get one component including its property by ID
// @Tags         Component
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Component ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /components/{id} [get]
func (c *ComponentController) GetComponent() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Komponenten-ID")
		return
	}

	componentService := c.Container.GetComponentService()
	component, err := componentService.GetComponentByID(id, ownerID)
	if err != nil {
		c.failComponentError(err)
		return
	}

	response.Success(c.Ctx, component)
}

// 3. CreateComponent registers a new component
// @Summary      Create component
// @Description  Register a new serviceable component on a property
// @Tags         Component
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        component body ComponentRequest true "Component data"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /components [post]
func (c *ComponentController) CreateComponent() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req ComponentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	component := &models.Component{
		PropertyID:      req.PropertyID,
		Type:            req.Type,
		CustomName:      req.CustomName,
		LastMaintenance: req.LastMaintenance,
	}

	componentService := c.Container.GetComponentService()
	if err := componentService.CreateComponent(ownerID, component); err != nil {
		if errors.Is(err, services.ErrNotOwned) {
			response.FailWithMessage(c.Ctx, code.ErrPropertyAccessDenied, "Zugriff verweigert", nil)
			return
		}
		config.Error("failed to create component for owner %d: %v", ownerID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, component)
}

// 4. UpdateComponent applies partial updates to a component
// @Summary      Update component
// @Description  Update type, name or last maintenance date of a component
// @Tags         Component
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Component ID"
// @Param        component body ComponentUpdateRequest true "Fields to update"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /components/{id} [put]
func (c *ComponentController) UpdateComponent() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Komponenten-ID")
		return
	}

	var req ComponentUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.CustomName != "" {
		updates["custom_name"] = req.CustomName
	}
	if req.LastMaintenance != nil {
		updates["last_maintenance"] = *req.LastMaintenance
	}
	if len(updates) == 0 {
		response.ParamError(c.Ctx, "Keine Felder zum Aktualisieren")
		return
	}

	componentService := c.Container.GetComponentService()
	component, err := componentService.UpdateComponent(id, ownerID, updates)
	if err != nil {
		c.failComponentError(err)
		return
	}

	response.Success(c.Ctx, component)
}

// 5. DeleteComponent removes a component and its maintenance history
// @Summary      Delete component
// @Description  Delete one component including all maintenance logs
// @Tags         Component
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Component ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /components/{id} [delete]
func (c *ComponentController) DeleteComponent() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Komponenten-ID")
		return
	}

	componentService := c.Container.GetComponentService()
	if err := componentService.DeleteComponent(id, ownerID); err != nil {
		c.failComponentError(err)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": id})
}

// 6. LogMaintenance records a completed maintenance and resets the clock
// @Summary      Log maintenance
// @Description  Record a completed maintenance event, reset the due date and recompute the risk level
// @Tags         Component
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Component ID"
// @Param        maintenance body MaintenanceRequest true "Maintenance event"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /components/{id}/maintenance [post]
func (c *ComponentController) LogMaintenance() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Komponenten-ID")
		return
	}

	var req MaintenanceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	componentService := c.Container.GetComponentService()
	component, err := componentService.LogMaintenance(id, ownerID, req.CompletedAt, req.Note)
	if err != nil {
		if errors.Is(err, services.ErrNotOwned) {
			response.FailWithMessage(c.Ctx, code.ErrPropertyAccessDenied, "Zugriff verweigert", nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrMaintenanceDateInvalid, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, component)
}

// 7. GetMaintenanceHistory lists the maintenance events of a component
// @Summary      Maintenance history
// @Description  List all recorded maintenance events of a component, newest first
// @Tags         Component
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Component ID"
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /components/{id}/maintenance [get]
func (c *ComponentController) GetMaintenanceHistory() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Komponenten-ID")
		return
	}
	page, pageSize := paginationParams(c.Ctx)

	componentService := c.Container.GetComponentService()
	logs, total, err := componentService.GetMaintenanceHistory(id, ownerID, page, pageSize)
	if err != nil {
		c.failComponentError(err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        logs,
	})
}

// 8. GetComponentRisk classifies one component on the fly
// @Summary      Component risk
// @Description  Classify a component and return level, display data and consequence information
// @Tags         Component
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Component ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /components/{id}/risk [get]
func (c *ComponentController) GetComponentRisk() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Komponenten-ID")
		return
	}

	componentService := c.Container.GetComponentService()
	component, err := componentService.GetComponentByID(id, ownerID)
	if err != nil {
		c.failComponentError(err)
		return
	}

	riskService := c.Container.GetRiskService()
	jurisdiction := componentService.JurisdictionOf(component)
	assessment, daysOverdue, err := riskService.Evaluate(component, jurisdiction, time.Now())
	if err != nil {
		config.Error("failed to evaluate risk for component %d: %v", component.ID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"component": gin.H{
			"id":               component.ID,
			"name":             component.DisplayName(),
			"type":             component.Type,
			"days_overdue":     daysOverdue,
			"next_maintenance": component.NextMaintenance,
		},
		"risk": assessment,
	})
}

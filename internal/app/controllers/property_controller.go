package controllers

import (
	"errors"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/services"
	"immowaechter-http-service/internal/domain/services/container"
	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfacePropertyController defines the property controller interface
type InterfacePropertyController interface {
	GetProperties()
	GetProperty()
	CreateProperty()
	UpdateProperty()
	DeleteProperty()
	ExportProperty()
}

// PropertyController handles property related requests
type PropertyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPropertyController creates a new property controller
func NewPropertyController(ctx *gin.Context, container *container.ServiceContainer) *PropertyController {
	return &PropertyController{
		Ctx:       ctx,
		Container: container,
	}
}

// PropertyRequest represents a property create or update request
type PropertyRequest struct {
	Name         string `json:"name" binding:"required" example:"Haus Graz"`
	Address      string `json:"address" example:"Hauptstraße 12"`
	PostalCode   string `json:"postal_code" example:"8010"`
	City         string `json:"city" example:"Graz"`
	Jurisdiction string `json:"jurisdiction" example:"AT"`
}

// HandlePropertyFunc returns a Gin handler dispatching property requests
func HandlePropertyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPropertyController(ctx, container)

		switch method {
		case "getProperties":
			controller.GetProperties()
		case "getProperty":
			controller.GetProperty()
		case "createProperty":
			controller.CreateProperty()
		case "updateProperty":
			controller.UpdateProperty()
		case "deleteProperty":
			controller.DeleteProperty()
		case "exportProperty":
			controller.ExportProperty()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Ungültige Methode", nil)
		}
	}
}

// failPropertyError maps service errors to the right response
func (c *PropertyController) failPropertyError(err error) {
	if errors.Is(err, services.ErrNotOwned) {
		response.FailWithMessage(c.Ctx, code.ErrPropertyAccessDenied, "Zugriff verweigert", nil)
		return
	}
	response.NotFound(c.Ctx, "Immobilie nicht gefunden")
}

// 1. GetProperties lists the authenticated owner's properties
// @Summary      List properties
// @Description  List all properties of the authenticated owner including components
// @Tags         Property
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /properties [get]
func (c *PropertyController) GetProperties() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	page, pageSize := paginationParams(c.Ctx)

	propertyService := c.Container.GetPropertyService()
	properties, total, err := propertyService.GetProperties(ownerID, page, pageSize)
	if err != nil {
		config.Error("failed to load properties for owner %d: %v", ownerID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        properties,
	})
}

// 2. GetProperty returns a single property
// @Summary      Get property
// @Description  Get one property of the authenticated owner by ID
// @Tags         Property
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Property ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /properties/{id} [get]
func (c *PropertyController) GetProperty() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Immobilien-ID")
		return
	}

	propertyService := c.Container.GetPropertyService()
	property, err := propertyService.GetPropertyByID(id, ownerID)
	if err != nil {
		c.failPropertyError(err)
		return
	}

	response.Success(c.Ctx, property)
}

// 3. CreateProperty creates a new property
// @Summary      Create property
// @Description  Create a new property for the authenticated owner
// @Tags         Property
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        property body PropertyRequest true "Property data"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /properties [post]
func (c *PropertyController) CreateProperty() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req PropertyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	property := &models.Property{
		OwnerID:      ownerID,
		Name:         req.Name,
		Address:      req.Address,
		PostalCode:   req.PostalCode,
		City:         req.City,
		Jurisdiction: req.Jurisdiction,
	}

	propertyService := c.Container.GetPropertyService()
	if err := propertyService.CreateProperty(property); err != nil {
		config.Error("failed to create property for owner %d: %v", property.OwnerID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, property)
}

// 4. UpdateProperty updates an existing property
// @Summary      Update property
// @Description  Update one property of the authenticated owner
// @Tags         Property
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Property ID"
// @Param        property body PropertyRequest true "Property data"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /properties/{id} [put]
func (c *PropertyController) UpdateProperty() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Immobilien-ID")
		return
	}

	var req PropertyRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"address":     req.Address,
		"postal_code": req.PostalCode,
		"city":        req.City,
	}
	if req.Jurisdiction != "" {
		updates["jurisdiction"] = req.Jurisdiction
	}

	propertyService := c.Container.GetPropertyService()
	property, err := propertyService.UpdateProperty(id, ownerID, updates)
	if err != nil {
		c.failPropertyError(err)
		return
	}

	response.Success(c.Ctx, property)
}

// 5. DeleteProperty removes a property with all its components
// @Summary      Delete property
// @Description  Delete one property of the authenticated owner including all components and maintenance logs
// @Tags         Property
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Property ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /properties/{id} [delete]
func (c *PropertyController) DeleteProperty() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Immobilien-ID")
		return
	}

	propertyService := c.Container.GetPropertyService()
	if err := propertyService.DeleteProperty(id, ownerID); err != nil {
		c.failPropertyError(err)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": id})
}

// 6. ExportProperty downloads a maintenance report for one property
// @Summary      Export maintenance report
// @Description  Download all components and maintenance logs of a property as XLSX or CSV
// @Tags         Property
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        id path int true "Property ID"
// @Param        format query string false "Export format: xlsx or csv, defaults to xlsx"
// @Success      200 {file} binary
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /properties/{id}/export [get]
func (c *PropertyController) ExportProperty() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Immobilien-ID")
		return
	}

	format := c.Ctx.DefaultQuery("format", "xlsx")
	exportService := c.Container.GetExportService()

	var (
		content     []byte
		filename    string
		contentType string
		err         error
	)
	switch format {
	case "xlsx":
		content, filename, err = exportService.BuildXLSX(ownerID, id)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "csv":
		content, filename, err = exportService.BuildCSV(ownerID, id)
		contentType = "text/csv; charset=utf-8"
	default:
		response.ParamError(c.Ctx, "Ungültiges Format, erwartet xlsx oder csv")
		return
	}
	if err != nil {
		c.failPropertyError(err)
		return
	}

	c.Ctx.Header("Content-Disposition", "attachment; filename="+filename)
	c.Ctx.Data(code.StatusOK, contentType, content)
}

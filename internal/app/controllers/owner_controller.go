package controllers

import (
	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/services/container"
	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceOwnerController defines the owner profile controller interface
type InterfaceOwnerController interface {
	GetProfile()
	UpdatePreferences()
}

// OwnerController handles owner profile requests
type OwnerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOwnerController creates a new owner controller
func NewOwnerController(ctx *gin.Context, container *container.ServiceContainer) *OwnerController {
	return &OwnerController{
		Ctx:       ctx,
		Container: container,
	}
}

// PreferencesRequest represents a notification preferences update
type PreferencesRequest struct {
	PushEnabled    *bool `json:"push_enabled" example:"true"`
	EmailEnabled   *bool `json:"email_enabled" example:"true"`
	NotifyResolved *bool `json:"notify_resolved" example:"false"`
}

// HandleOwnerFunc returns a Gin handler dispatching owner profile requests
func HandleOwnerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOwnerController(ctx, container)

		switch method {
		case "getProfile":
			controller.GetProfile()
		case "updatePreferences":
			controller.UpdatePreferences()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Ungültige Methode", nil)
		}
	}
}

// 1. GetProfile returns the authenticated owner's account
// @Summary      Get profile
// @Description  Return the authenticated owner's account including notification preferences
// @Tags         Owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /profile [get]
func (c *OwnerController) GetProfile() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	ownerService := c.Container.GetOwnerService()
	owner, err := ownerService.GetOwnerByID(ownerID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrOwnerNotFound, "Konto nicht gefunden", nil)
		return
	}

	response.Success(c.Ctx, owner)
}

// 2. UpdatePreferences updates the notification preferences
// @Summary      Update preferences
// @Description  Update push, email and all-clear notification preferences
// @Tags         Owner
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        preferences body PreferencesRequest true "Preference flags"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /profile/preferences [put]
func (c *OwnerController) UpdatePreferences() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req PreferencesRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	ownerService := c.Container.GetOwnerService()
	owner, err := ownerService.GetOwnerByID(ownerID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrOwnerNotFound, "Konto nicht gefunden", nil)
		return
	}

	// Unset fields keep their current value
	prefs := models.NotificationPrefs{
		PushEnabled:    owner.PushEnabled,
		EmailEnabled:   owner.EmailEnabled,
		NotifyResolved: owner.NotifyResolved,
	}
	if req.PushEnabled != nil {
		prefs.PushEnabled = *req.PushEnabled
	}
	if req.EmailEnabled != nil {
		prefs.EmailEnabled = *req.EmailEnabled
	}
	if req.NotifyResolved != nil {
		prefs.NotifyResolved = *req.NotifyResolved
	}

	updated, err := ownerService.UpdatePreferences(ownerID, prefs)
	if err != nil {
		config.Error("failed to update preferences for owner %d: %v", ownerID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, updated)
}

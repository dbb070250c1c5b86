package controllers

import (
	"immowaechter-http-service/internal/domain/services/container"
	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfacePushController defines the push subscription controller interface
type InterfacePushController interface {
	Subscribe()
	Unsubscribe()
	GetVAPIDKey()
}

// PushController handles Web Push subscription requests
type PushController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPushController creates a new push controller
func NewPushController(ctx *gin.Context, container *container.ServiceContainer) *PushController {
	return &PushController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubscribeRequest represents a browser push subscription
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required" example:"https://fcm.googleapis.com/fcm/send/..."`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// UnsubscribeRequest identifies the subscription to remove
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// HandlePushFunc returns a Gin handler dispatching push subscription requests
func HandlePushFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPushController(ctx, container)

		switch method {
		case "subscribe":
			controller.Subscribe()
		case "unsubscribe":
			controller.Unsubscribe()
		case "getVAPIDKey":
			controller.GetVAPIDKey()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Ungültige Methode", nil)
		}
	}
}

// 1. Subscribe stores a browser push subscription
// @Summary      Subscribe to push
// @Description  Store the browser's Web Push subscription for the authenticated owner
// @Tags         Push
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        subscription body SubscribeRequest true "Push subscription"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /push/subscribe [post]
func (c *PushController) Subscribe() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req SubscribeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	pushService := c.Container.GetPushService()
	subscription, err := pushService.Subscribe(ownerID, req.Endpoint, req.Keys.P256dh, req.Keys.Auth, c.Ctx.Request.UserAgent())
	if err != nil {
		config.Error("failed to store push subscription for owner %d: %v", ownerID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, subscription)
}

// 2. Unsubscribe removes a push subscription by endpoint
// @Summary      Unsubscribe from push
// @Description  Remove the given push subscription of the authenticated owner
// @Tags         Push
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        subscription body UnsubscribeRequest true "Endpoint to remove"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /push/unsubscribe [post]
func (c *PushController) Unsubscribe() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req UnsubscribeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anfrageparameter: "+err.Error(), nil)
		return
	}

	pushService := c.Container.GetPushService()
	if err := pushService.Unsubscribe(ownerID, req.Endpoint); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrPushSubscriptionNotFound, "Abonnement nicht gefunden", nil)
		return
	}

	response.Success(c.Ctx, gin.H{"unsubscribed": req.Endpoint})
}

// 3. GetVAPIDKey returns the public VAPID key for the browser
// @Summary      VAPID public key
// @Description  Return the public VAPID key the browser needs to subscribe
// @Tags         Push
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /push/vapid-key [get]
func (c *PushController) GetVAPIDKey() {
	pushService := c.Container.GetPushService()
	response.Success(c.Ctx, gin.H{
		"public_key": pushService.VAPIDPublicKey(),
	})
}

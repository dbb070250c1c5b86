package controllers

import (
	"immowaechter-http-service/internal/domain/services/container"
	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceNotificationController defines the notification controller interface
type InterfaceNotificationController interface {
	GetNotifications()
	MarkRead()
	MarkAllRead()
}

// NotificationController handles notification inbox requests
type NotificationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNotificationController creates a new notification controller
func NewNotificationController(ctx *gin.Context, container *container.ServiceContainer) *NotificationController {
	return &NotificationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleNotificationFunc returns a Gin handler dispatching notification requests
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNotificationController(ctx, container)

		switch method {
		case "getNotifications":
			controller.GetNotifications()
		case "markRead":
			controller.MarkRead()
		case "markAllRead":
			controller.MarkAllRead()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Ungültige Methode", nil)
		}
	}
}

// 1. GetNotifications lists the owner's notifications, newest first
// @Summary      List notifications
// @Description  List the authenticated owner's notifications, optionally unread only
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        unread query bool false "Only unread notifications"
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /notifications [get]
func (c *NotificationController) GetNotifications() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	page, pageSize := paginationParams(c.Ctx)
	unreadOnly := c.Ctx.Query("unread") == "true"

	notificationService := c.Container.GetNotificationService()
	notifications, total, err := notificationService.GetNotifications(ownerID, page, pageSize, unreadOnly)
	if err != nil {
		config.Error("failed to load notifications for owner %d: %v", ownerID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        notifications,
	})
}

// 2. MarkRead marks one notification as read
// @Summary      Mark notification read
// @Description  Mark one notification of the authenticated owner as read
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Notification ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /notifications/{id}/read [post]
func (c *NotificationController) MarkRead() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := pathID(c.Ctx, "id")
	if !ok {
		response.ParamError(c.Ctx, "Ungültige Benachrichtigungs-ID")
		return
	}

	notificationService := c.Container.GetNotificationService()
	if err := notificationService.MarkRead(id, ownerID); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrNotificationNotFound, "Benachrichtigung nicht gefunden", nil)
		return
	}

	response.Success(c.Ctx, gin.H{"read": id})
}

// 3. MarkAllRead marks every notification of the owner as read
// @Summary      Mark all notifications read
// @Description  Mark all notifications of the authenticated owner as read
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /notifications/read-all [post]
func (c *NotificationController) MarkAllRead() {
	ownerID, ok := currentOwnerID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	notificationService := c.Container.GetNotificationService()
	updated, err := notificationService.MarkAllRead(ownerID)
	if err != nil {
		config.Error("failed to mark notifications read for owner %d: %v", ownerID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"updated": updated})
}

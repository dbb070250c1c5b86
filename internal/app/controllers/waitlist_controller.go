package controllers

import (
	"immowaechter-http-service/internal/domain/services/container"
	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceWaitlistController defines the waitlist controller interface
type InterfaceWaitlistController interface {
	Join()
	Confirm()
}

// WaitlistController handles public waitlist signups
type WaitlistController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewWaitlistController creates a new waitlist controller
func NewWaitlistController(ctx *gin.Context, container *container.ServiceContainer) *WaitlistController {
	return &WaitlistController{
		Ctx:       ctx,
		Container: container,
	}
}

// WaitlistRequest represents a waitlist signup
type WaitlistRequest struct {
	Email  string `json:"email" binding:"required,email" example:"max@example.at"`
	Name   string `json:"name" example:"Max Mustermann"`
	Source string `json:"source" example:"landing_page"`
}

// HandleWaitlistFunc returns a Gin handler dispatching waitlist requests
func HandleWaitlistFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewWaitlistController(ctx, container)

		switch method {
		case "join":
			controller.Join()
		case "confirm":
			controller.Confirm()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Ungültige Methode", nil)
		}
	}
}

// 1. Join puts an email address on the waitlist
// @Summary      Join waitlist
// @Description  Sign up for the waitlist and receive a confirmation email
// @Tags         Waitlist
// @Accept       json
// @Produce      json
// @Param        signup body WaitlistRequest true "Signup data"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /waitlist [post]
func (c *WaitlistController) Join() {
	var req WaitlistRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige E-Mail-Adresse", nil)
		return
	}

	waitlistService := c.Container.GetWaitlistService()
	entry, err := waitlistService.Join(req.Email, req.Name, req.Source)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrWaitlistDuplicate, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"email":   entry.Email,
		"message": "Bestätigungs-E-Mail wurde versendet",
	})
}

// 2. Confirm validates a confirmation token from the email link
// @Summary      Confirm waitlist entry
// @Description  Confirm a waitlist signup via the emailed token, repeat confirmations are accepted
// @Tags         Waitlist
// @Accept       json
// @Produce      json
// @Param        token query string true "Confirmation token"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /waitlist/confirm [get]
func (c *WaitlistController) Confirm() {
	token := c.Ctx.Query("token")
	if token == "" {
		response.ParamError(c.Ctx, "Token fehlt")
		return
	}

	waitlistService := c.Container.GetWaitlistService()
	entry, err := waitlistService.Confirm(token)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrWaitlistTokenInvalid, "Unbekannter Bestätigungstoken", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"email":     entry.Email,
		"confirmed": true,
	})
}

package controllers

import (
	"immowaechter-http-service/internal/error/code"
	"immowaechter-http-service/internal/error/response"
	"immowaechter-http-service/internal/domain/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController defines the authentication controller interface
type InterfaceJWTController interface {
	Login()
	Register()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new authentication controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"max@example.at"`
	Password string `json:"password" binding:"required" example:"geheim123"`
}

// RegisterRequest represents an account registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"max@example.at"`
	Password string `json:"password" binding:"required,min=8" example:"geheim123"`
	Name     string `json:"name" binding:"required" example:"Max Mustermann"`
	Phone    string `json:"phone" example:"+43 660 1234567"`
}

// LoginData represents the data returned after a successful login
type LoginData struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	OwnerID uint   `json:"owner_id" example:"1"`
	Role    string `json:"role" example:"owner"`
	Email   string `json:"email" example:"max@example.at"`
	Name    string `json:"name" example:"Max Mustermann"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"Invalid email or password"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc returns a Gin handler dispatching authentication requests
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Ungültige Methode", nil)
		}
	}
}

// 1. Login authenticates an owner and returns a JWT token
// @Summary      Owner login
// @Description  Authenticate with email and password and receive a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  map[string]interface{}  "Success response with token"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Anmeldedaten", nil)
		return
	}

	jwtService := c.Container.GetJWTService()
	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		// Same response for unknown account and wrong password
		response.Unauthorized(c.Ctx)
		return
	}

	response.Success(c.Ctx, result)
}

// 2. Register creates a new owner account and returns a token
// @Summary      Owner registration
// @Description  Create a new owner account and log in immediately
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration parameters"
// @Success      200  {object}  map[string]interface{}  "Success response with token"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      409  {object}  ErrorResponse  "Email already registered"
// @Router       /auth/register [post]
func (c *JWTController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Ungültige Registrierungsdaten: "+err.Error(), nil)
		return
	}

	ownerService := c.Container.GetOwnerService()
	owner, err := ownerService.Register(req.Email, req.Password, req.Name, req.Phone)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrOwnerAlreadyExist, err.Error(), nil)
		return
	}

	jwtService := c.Container.GetJWTService()
	token, err := jwtService.GenerateToken(owner.ID, owner.Role)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "Token konnte nicht erstellt werden", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token":    token,
		"owner_id": owner.ID,
		"role":     owner.Role,
		"email":    owner.Email,
		"name":     owner.Name,
	})
}

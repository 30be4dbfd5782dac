package controllers

import (
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/declanhart/order-management-api/services"
	"github.com/declanhart/order-management-api/utils"
)

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=Admin Customer"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles registration and login endpoints
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles POST /api/v1/users/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if msg, ok := checkPasswordComplexity(req.Password); !ok {
		utils.RespondValidationError(c, msg)
		return
	}

	result, appErr := ctl.auth.Register(req.Username, req.Password, req.Role)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, result)
}

// Login handles POST /api/v1/users/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	result, appErr := ctl.auth.Login(req.Username, req.Password)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, result)
}

// checkPasswordComplexity enforces the password rules that binding tags
// cannot express: at least one upper, one lower, one digit and one special
// character.
func checkPasswordComplexity(password string) (string, bool) {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	switch {
	case !hasUpper:
		return "Password must contain at least one uppercase letter.", false
	case !hasLower:
		return "Password must contain at least one lowercase letter.", false
	case !hasDigit:
		return "Password must contain at least one number.", false
	case !hasSpecial:
		return "Password must contain at least one special character.", false
	}
	return "", true
}

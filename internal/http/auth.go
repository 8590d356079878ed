package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exotravel/exotravel/internal/auth"
)

// AuthController handles the credential and session endpoints.
type AuthController struct {
	service *auth.Service
	cookies *auth.CookieManager
}

// NewAuthController creates the authentication controller.
func NewAuthController(service *auth.Service, cookies *auth.CookieManager) *AuthController {
	return &AuthController{service: service, cookies: cookies}
}

// RegisterRoutes registers the auth endpoints on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth/register", ac.Register)
	router.POST("/auth/login", ac.Login)
	router.GET("/auth/me", ac.Me)
	router.POST("/auth/logout", ac.Logout)
}

// Register creates an account and opens a session for it.
func (ac *AuthController) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, "Invalid registration data", err)
		return
	}

	user, err := ac.service.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			respondError(c, http.StatusConflict, CodeEmailExists,
				"An account with this email already exists", nil)
			return
		}
		respondInternalError(c, err, "register")
		return
	}

	if err := ac.cookies.Attach(c, auth.PayloadFor(user)); err != nil {
		respondInternalError(c, err, "register session")
		return
	}

	c.JSON(http.StatusCreated, user.Public())
}

// Login verifies credentials and opens a session.
func (ac *AuthController) Login(c *gin.Context) {
	var req auth.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, "Invalid login data", err)
		return
	}

	user, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, CodeInvalidCredentials,
				"Invalid email or password", nil)
			return
		}
		respondInternalError(c, err, "login")
		return
	}

	if err := ac.cookies.Attach(c, auth.PayloadFor(user)); err != nil {
		respondInternalError(c, err, "login session")
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// Me reports the identity carried by the session cookie. The payload
// is taken from the token as-is, never re-fetched from the store, and
// a missing or invalid session is simply a null user, never an error.
func (ac *AuthController) Me(c *gin.Context) {
	payload := ac.cookies.Read(c)
	if payload == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    payload.UserID,
		"email": payload.Email,
		"name":  payload.Name,
	}})
}

// Logout clears the session cookie. Always succeeds, with or without
// a prior session; the token itself stays valid until its expiry.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

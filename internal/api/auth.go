package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"uni3_backend/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginHandler authenticates a user and returns an access token
func LoginHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c, err)
			return
		}
		res, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				c.Header("WWW-Authenticate", "Bearer") // Tell clients which scheme the token is for
			}
			respondError(c, "login", err, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, res) // Return the token and the user summary
	}
}

package handler

import (
	"net/http"
	"strings"

	authdto "github.com/Kostiantyn78/ImageHub/internal/modules/auth/dto"
	"github.com/Kostiantyn78/ImageHub/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "signup failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":   user,
		"detail": "user successfully created, check your email for confirmation",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pair, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Refresh expects the refresh token as a bearer credential.
func (h *Handler) Refresh(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	pair, err := h.authService.Refresh(token)
	if err != nil {
		httpx.WriteServiceError(c, err, "refresh failed")
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *Handler) ConfirmEmail(c *gin.Context) {
	message, err := h.authService.ConfirmEmail(c.Param("token"))
	if err != nil {
		httpx.WriteServiceError(c, err, "verification error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *Handler) RequestEmail(c *gin.Context) {
	var req authdto.RequestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	message, err := h.authService.RequestEmail(req.Email)
	if err != nil {
		httpx.WriteServiceError(c, err, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

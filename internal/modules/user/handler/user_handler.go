package handler

import (
	"net/http"

	"github.com/Kostiantyn78/ImageHub/internal/middleware"
	"github.com/Kostiantyn78/ImageHub/internal/modules/common/httpx"
	moduledto "github.com/Kostiantyn78/ImageHub/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) Profile(c *gin.Context) {
	user, err := h.userService.Profile(c.Param("username"))
	if err != nil {
		httpx.WriteServiceError(c, err, "could not load profile")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewProfileResponse(user))
}

func (h *Handler) UpdateAvatar(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()

	updated, err := h.userService.UpdateAvatar(c.Request.Context(), user, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "could not update avatar")
		return
	}
	c.JSON(http.StatusOK, updated)
}

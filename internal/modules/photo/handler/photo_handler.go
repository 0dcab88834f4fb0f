package handler

import (
	"net/http"
	"strconv"

	"github.com/Kostiantyn78/ImageHub/internal/middleware"
	"github.com/Kostiantyn78/ImageHub/internal/modules/common/httpx"
	moduledto "github.com/Kostiantyn78/ImageHub/internal/modules/photo/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Upload(c *gin.Context) {
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

	description := c.PostForm("description")
	tags := c.PostForm("tags")

	photo, err := h.photoService.Upload(c.Request.Context(), user, file, description, tags)
	if err != nil {
		httpx.WriteServiceError(c, err, "upload failed")
		return
	}

	c.JSON(http.StatusCreated, moduledto.NewPhotoResponse(photo))
}

func (h *Handler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	photoID, ok := idParam(c)
	if !ok {
		return
	}

	photo, err := h.photoService.Get(user, photoID)
	if err != nil {
		httpx.WriteServiceError(c, err, "could not load photo")
		return
	}

	c.JSON(http.StatusOK, moduledto.NewPhotoResponse(photo))
}

func (h *Handler) UpdateDescription(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	photoID, ok := idParam(c)
	if !ok {
		return
	}

	var req moduledto.UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	photo, err := h.photoService.UpdateDescription(user, photoID, req.Description)
	if err != nil {
		httpx.WriteServiceError(c, err, "could not update photo")
		return
	}

	c.JSON(http.StatusOK, moduledto.NewPhotoResponse(photo))
}

func (h *Handler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	photoID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.photoService.Delete(c.Request.Context(), user, photoID); err != nil {
		httpx.WriteServiceError(c, err, "could not delete photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "photo deleted"})
}

func idParam(c *gin.Context) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || parsed == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id parameter"})
		return 0, false
	}
	return uint(parsed), true
}

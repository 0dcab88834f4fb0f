package handler

import (
	"net/http"
	"strconv"

	"github.com/Kostiantyn78/ImageHub/internal/middleware"
	"github.com/Kostiantyn78/ImageHub/internal/model"
	"github.com/Kostiantyn78/ImageHub/internal/modules/common/httpx"
	moduledto "github.com/Kostiantyn78/ImageHub/internal/modules/transform/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	photoID, ok := uintParam(c, "photo_id")
	if !ok {
		return
	}

	var req moduledto.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	transform, err := h.transformService.Create(c.Request.Context(), user, photoID, req.Params())
	if err != nil {
		httpx.WriteServiceError(c, err, "could not create transform")
		return
	}
	c.JSON(http.StatusCreated, transform)
}

func (h *Handler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	transformID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req moduledto.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	transform, err := h.transformService.Update(c.Request.Context(), user, transformID, req.Params())
	if err != nil {
		httpx.WriteServiceError(c, err, "could not update transform")
		return
	}
	c.JSON(http.StatusOK, transform)
}

func (h *Handler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	transformID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.transformService.Delete(c.Request.Context(), user, transformID); err != nil {
		httpx.WriteServiceError(c, err, "could not delete transform")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transform deleted"})
}

func (h *Handler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	transformID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	transform, err := h.transformService.Get(user, transformID)
	if err != nil {
		httpx.WriteServiceError(c, err, "could not load transform")
		return
	}
	c.JSON(http.StatusOK, transform)
}

func (h *Handler) GetQRCode(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	transformID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	url, err := h.transformService.GetQRCode(user, transformID)
	if err != nil {
		httpx.WriteServiceError(c, err, "could not load qr code")
		return
	}
	c.JSON(http.StatusOK, gin.H{"qr_code_url": url})
}

func (h *Handler) ListMine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	transforms, err := h.transformService.ListByUser(user)
	if err != nil {
		httpx.WriteServiceError(c, err, "could not list transforms")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": transforms})
}

func currentUser(c *gin.Context) (*model.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	return user, true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || parsed == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(parsed), true
}

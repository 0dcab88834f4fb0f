package handler

import (
	"net/http"
	"strconv"

	"github.com/Kostiantyn78/ImageHub/internal/middleware"
	moduledto "github.com/Kostiantyn78/ImageHub/internal/modules/comment/dto"
	"github.com/Kostiantyn78/ImageHub/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	photoID, ok := uintParam(c, "image_id")
	if !ok {
		return
	}

	var req moduledto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment text must be 1-250 characters"})
		return
	}

	comment, err := h.commentService.Create(user, photoID, req.Text)
	if err != nil {
		httpx.WriteServiceError(c, err, "could not create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) List(c *gin.Context) {
	photoID, ok := uintParam(c, "image_id")
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	comments, err := h.commentService.List(photoID, offset, limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "could not list comments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": comments})
}

func (h *Handler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	commentID, ok := uintParam(c, "comment_id")
	if !ok {
		return
	}

	var req moduledto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment text must be 1-250 characters"})
		return
	}

	comment, err := h.commentService.Update(user, commentID, req.Text)
	if err != nil {
		httpx.WriteServiceError(c, err, "could not update comment")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete is reachable only through the admin/moderator role gate on the route.
func (h *Handler) Delete(c *gin.Context) {
	commentID, ok := uintParam(c, "comment_id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(commentID); err != nil {
		httpx.WriteServiceError(c, err, "could not delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || parsed == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(parsed), true
}

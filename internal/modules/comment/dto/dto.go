package dto

type CommentRequest struct {
	Text string `json:"text" binding:"required,min=1,max=250"`
}

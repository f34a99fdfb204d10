package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/senaitabera/wellspring/internal/domain/entity"
	"github.com/senaitabera/wellspring/internal/handler/http/dto"
	"github.com/senaitabera/wellspring/internal/usecase"
)

type CommentHandler struct {
	commentUsecase usecase.ICommentUseCase
}

func NewCommentHandler(commentUsecase usecase.ICommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
	}
}

// AddCommentHandler accepts a reader comment; it enters the moderation queue.
func (h *CommentHandler) AddCommentHandler(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUsecase.Add(c.Request.Context(), usecase.AddCommentInput{
		PostID:  c.Param("postID"),
		Content: req.Content,
		Author:  dto.ToAuthorEntity(req.Author),
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCommentResponse(comment))
}

// ListPublicCommentsHandler returns approved comments for a post.
func (h *CommentHandler) ListPublicCommentsHandler(c *gin.Context) {
	comments, err := h.commentUsecase.ListPublic(c.Request.Context(), c.Param("postID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentListResponse(comments))
}

// ListModerationHandler returns the moderation queue for the dashboard.
func (h *CommentHandler) ListModerationHandler(c *gin.Context) {
	status := entity.CommentStatus(c.Query("status"))
	comments, err := h.commentUsecase.ListModeration(c.Request.Context(), status)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentListResponse(comments))
}

// ModerateCommentHandler approves or rejects a comment.
func (h *CommentHandler) ModerateCommentHandler(c *gin.Context) {
	var req dto.ModerateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUsecase.Moderate(c.Request.Context(), c.Param("commentID"), entity.CommentStatus(req.Status))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentResponse(comment))
}

// DeleteCommentHandler
func (h *CommentHandler) DeleteCommentHandler(c *gin.Context) {
	if err := h.commentUsecase.Delete(c.Request.Context(), c.Param("commentID")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted successfully")
}

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"comment-service/internal/domain"
	"comment-service/internal/logger"
	"comment-service/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        int64  `json:"id"`
	ArticleID string `json:"article_id"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// CreateCommentRequest is the body of POST /api/articles/:articleId/comments.
type CreateCommentRequest struct {
	Content *string `json:"content"`
	Author  *string `json:"author"`
}

// toCommentResponse converts a domain.Comment to a CommentResponse.
func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Content:   c.Content,
		Author:    c.Author,
		CreatedAt: c.CreatedAt.UTC().Format(TimeFormat),
	}
}

// ListComments handles GET /api/articles/:articleId/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID := c.Param("articleId")

	comments, err := h.commentService.ListComments(c.Request.Context(), articleID)
	if err != nil {
		h.respondError(c, articleID, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, toCommentResponse(&comments[i]))
	}

	c.JSON(http.StatusOK, response)
}

// CreateComment handles POST /api/articles/:articleId/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID := c.Param("articleId")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object with string fields content and author"})
		return
	}

	input := domain.CreateCommentInput{}
	if req.Content != nil {
		input.Content = *req.Content
	}
	if req.Author != nil {
		input.Author = *req.Author
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), articleID, input)
	if err != nil {
		h.respondError(c, articleID, err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// respondError maps service errors to HTTP responses.
func (h *CommentHandler) respondError(c *gin.Context, articleID string, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("article %s not found", articleID)})
	case errors.Is(err, domain.ErrArticleServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "article service unavailable, the article could not be verified; retry later"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid comment", "fields": validationErr.Fields})
	default:
		logger.WithArticleID(c.Request.Context(), articleID).Error("Comment request failed",
			slog.String("method", c.Request.Method),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process comment request"})
	}
}

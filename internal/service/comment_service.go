package service

import (
	"context"
	"fmt"
	"log/slog"

	"comment-service/internal/domain"
	"comment-service/internal/logger"
	"comment-service/internal/metrics"
	"comment-service/internal/repository"
	"comment-service/internal/validator"
)

// CommentService applies the article existence policy around the comment
// store. Reads tolerate an unreachable article service; writes do not.
type CommentService struct {
	articles    ArticleChecker
	commentRepo repository.CommentRepository
	validator   *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(articles ArticleChecker, commentRepo repository.CommentRepository, v *validator.Validator) *CommentService {
	return &CommentService{
		articles:    articles,
		commentRepo: commentRepo,
		validator:   v,
	}
}

// ListComments returns the comments of articleID, oldest first. Only a
// confirmed absence of the article blocks the read.
func (s *CommentService) ListComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	switch s.articles.CheckArticleExists(ctx, articleID) {
	case domain.ArticleNotFound:
		metrics.ObserveCommentRejected("list", "article_not_found")
		return nil, fmt.Errorf("list comments for article %q: %w", articleID, domain.ErrArticleNotFound)
	case domain.ArticleUnknown:
		logger.WithArticleID(ctx, articleID).Warn("Serving comments without article confirmation")
	}

	comments, err := s.commentRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments for article %q: %w", articleID, err)
	}

	return comments, nil
}

// CreateComment validates input and stores it as a comment of articleID.
// It refuses to write unless the article service confirmed the article.
func (s *CommentService) CreateComment(ctx context.Context, articleID string, input domain.CreateCommentInput) (*domain.Comment, error) {
	switch s.articles.CheckArticleExists(ctx, articleID) {
	case domain.ArticleExists:
	case domain.ArticleNotFound:
		metrics.ObserveCommentRejected("create", "article_not_found")
		return nil, fmt.Errorf("create comment for article %q: %w", articleID, domain.ErrArticleNotFound)
	default:
		metrics.ObserveCommentRejected("create", "article_unknown")
		return nil, fmt.Errorf("create comment for article %q: %w", articleID, domain.ErrArticleServiceUnavailable)
	}

	input = s.validator.SanitizeComment(input)
	comment := &domain.Comment{
		ArticleID: articleID,
		Content:   input.Content,
		Author:    input.Author,
	}

	if err := validator.ToValidationError(s.validator.ValidateComment(comment)); err != nil {
		metrics.ObserveCommentRejected("create", "invalid_payload")
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment for article %q: %w", articleID, err)
	}

	metrics.CommentsCreatedTotal.Inc()
	logger.WithArticleID(ctx, articleID).Info("Comment created",
		slog.Int64("comment_id", comment.ID))

	return comment, nil
}

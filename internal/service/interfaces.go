package service

import (
	"context"

	"comment-service/internal/domain"
)

// ArticleChecker reports whether an article exists in the article service.
// Implementations never fail; inconclusive answers are ArticleUnknown.
type ArticleChecker interface {
	CheckArticleExists(ctx context.Context, articleID string) domain.ArticleStatus
}

// CommentServiceInterface defines the interface for comment operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	// ListComments returns the comments of an article unless the article
	// service confirmed that it does not exist.
	ListComments(ctx context.Context, articleID string) ([]domain.Comment, error)
	// CreateComment persists a comment once the article is known to exist.
	CreateComment(ctx context.Context, articleID string, input domain.CreateCommentInput) (*domain.Comment, error)
}

package repository

import (
	"context"

	"comment-service/internal/domain"
)

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	// ListByArticle returns every comment of an article, oldest first.
	// It returns an empty slice, not an error, when there are none.
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	// Create persists comment and fills in its generated ID and CreatedAt.
	Create(ctx context.Context, comment *domain.Comment) error
}

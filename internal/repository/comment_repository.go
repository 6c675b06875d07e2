package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"comment-service/internal/domain"
	"comment-service/internal/logger"
	"comment-service/internal/metrics"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// ListByArticle returns all comments for articleID ordered by creation time.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	defer metrics.NewTimer().ObserveDuration(metrics.DBOperationDuration.WithLabelValues("list_by_article"))

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, domain.NewStorageError("acquire connection", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
		SELECT id, article_id, content, author, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at, id
	`, articleID)
	if err != nil {
		return nil, domain.NewStorageError("query comments", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Content, &c.Author, &c.CreatedAt); err != nil {
			return nil, domain.NewStorageError("scan comment", err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("read comments", err)
	}

	return comments, nil
}

// Create inserts comment and populates its ID and CreatedAt from the database.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	defer metrics.NewTimer().ObserveDuration(metrics.DBOperationDuration.WithLabelValues("create"))

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return domain.NewStorageError("acquire connection", err)
	}
	defer conn.Release()

	err = conn.QueryRow(ctx, `
		INSERT INTO comments (article_id, content, author)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, comment.ArticleID, comment.Content, comment.Author).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if ve := rejectedValue(err); ve != nil {
			return ve
		}
		logger.WithArticleID(ctx, comment.ArticleID).Error("Failed to insert comment",
			slog.String("repository", "comment"),
			slog.String("error", err.Error()))
		return domain.NewStorageError("insert comment", err)
	}
	comment.CreatedAt = comment.CreatedAt.UTC()

	return nil
}

// PostgreSQL error codes for values the schema refuses to store.
const (
	pgCheckViolation          = "23514"
	pgStringTooLong           = "22001"
	pgCharacterNotInRepertory = "22021"
)

// rejectedValue maps errors caused by the submitted values rather than by
// the database to a ValidationError. It returns nil for anything else.
func rejectedValue(err error) *domain.ValidationError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	field := "comment"
	switch {
	case strings.Contains(pgErr.ConstraintName, "content"), pgErr.ColumnName == "content":
		field = "content"
	case strings.Contains(pgErr.ConstraintName, "author"), pgErr.ColumnName == "author":
		field = "author"
	}

	switch pgErr.Code {
	case pgCheckViolation:
		return &domain.ValidationError{Fields: map[string]string{field: field + "_required"}}
	case pgStringTooLong:
		return &domain.ValidationError{Fields: map[string]string{field: field + "_too_long"}}
	case pgCharacterNotInRepertory:
		return &domain.ValidationError{Fields: map[string]string{field: field + "_invalid"}}
	}
	return nil
}

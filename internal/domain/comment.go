package domain

import "time"

// Comment represents a comment attached to an article.
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID string    `json:"article_id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentInput is the client-supplied part of a new comment.
type CreateCommentInput struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// MaxAuthorLength mirrors the width of comments.author.
const MaxAuthorLength = 100

// MaxArticleIDLength mirrors the width of comments.article_id.
const MaxArticleIDLength = 50

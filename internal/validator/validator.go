package validator

import (
	"errors"
	"html"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/microcosm-cc/bluemonday"

	"comment-service/internal/domain"
)

var (
	errContentInvalid = validation.NewError("content_invalid", "content_invalid")
	errContentMarkup  = validation.NewError("content_markup_not_allowed", "content_markup_not_allowed")
	errAuthorInvalid  = validation.NewError("author_invalid", "author_invalid")

	crlf = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Validator sanitises and validates comments before they are persisted.
type Validator struct {
	content *bluemonday.Policy
	author  *bluemonday.Policy
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	content := bluemonday.UGCPolicy()
	// Content is stored as submitted, so the policy must not rewrite links.
	content.RequireNoFollowOnLinks(false)

	return &Validator{
		content: content,
		author:  bluemonday.StrictPolicy(),
	}
}

// SanitizeComment trims both fields and strips all markup from the author
// name. Content is left as submitted; ValidateComment rejects content
// carrying markup outside the user-generated content subset.
func (v *Validator) SanitizeComment(in domain.CreateCommentInput) domain.CreateCommentInput {
	// StrictPolicy escapes the text it keeps; the author is stored as plain text.
	author := html.UnescapeString(v.author.Sanitize(strings.TrimSpace(in.Author)))
	return domain.CreateCommentInput{
		Content: strings.TrimSpace(in.Content),
		Author:  strings.TrimSpace(author),
	}
}

// ValidateComment validates a Comment entity.
func (v *Validator) ValidateComment(c *domain.Comment) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ArticleID,
			validation.Required.Error("article_id_required"),
			validation.RuneLength(0, domain.MaxArticleIDLength).Error("article_id_too_long"),
		),
		validation.Field(&c.Content,
			validation.Required.Error("content_required"),
			validation.By(noNUL(errContentInvalid)),
			validation.By(v.allowedMarkup),
		),
		validation.Field(&c.Author,
			validation.Required.Error("author_required"),
			validation.RuneLength(0, domain.MaxAuthorLength).Error("author_too_long"),
			validation.By(noNUL(errAuthorInvalid)),
			validation.By(plainText),
		),
	)
}

// noNUL rejects strings containing a NUL byte, which PostgreSQL text
// columns cannot hold.
func noNUL(err error) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.ContainsRune(s, 0) {
			return err
		}
		return nil
	}
}

// allowedMarkup accepts content the policy would leave intact. Both sides
// are unescaped so plain text such as "5 < 6" compares equal to the
// policy's escaped rendering. The HTML tokenizer folds CR LF into LF.
func (v *Validator) allowedMarkup(value interface{}) error {
	s, _ := value.(string)
	s = crlf.Replace(s)
	if html.UnescapeString(v.content.Sanitize(s)) != html.UnescapeString(s) {
		return errContentMarkup
	}
	return nil
}

// plainText rejects author names that still look like markup once
// entities are decoded, e.g. "&lt;script&gt;".
func plainText(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, "<>") {
		return errAuthorInvalid
	}
	return nil
}

// ToValidationError converts ozzo validation errors to a domain
// ValidationError keyed by JSON field name. Other errors are returned as is.
func ToValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		fields[field] = fieldErr.Error()
	}
	return &domain.ValidationError{Fields: fields}
}

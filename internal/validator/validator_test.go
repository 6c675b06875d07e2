package validator

import (
	"errors"
	"strings"
	"testing"

	"comment-service/internal/domain"
)

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		comment *domain.Comment
		wantErr bool
		field   string
		errMsg  string
	}{
		{
			name:    "valid comment",
			comment: &domain.Comment{ArticleID: "42", Content: "hi", Author: "bob"},
			wantErr: false,
		},
		{
			name:    "opaque article id",
			comment: &domain.Comment{ArticleID: "64f1c2e9a1b2c3d4e5f60718", Content: "hi", Author: "bob"},
			wantErr: false,
		},
		{
			name:    "missing content",
			comment: &domain.Comment{ArticleID: "42", Content: "", Author: "bob"},
			wantErr: true,
			field:   "content",
			errMsg:  "content_required",
		},
		{
			name:    "missing author",
			comment: &domain.Comment{ArticleID: "42", Content: "hi", Author: ""},
			wantErr: true,
			field:   "author",
			errMsg:  "author_required",
		},
		{
			name:    "author at max length",
			comment: &domain.Comment{ArticleID: "42", Content: "hi", Author: strings.Repeat("é", domain.MaxAuthorLength)},
			wantErr: false,
		},
		{
			name:    "author too long",
			comment: &domain.Comment{ArticleID: "42", Content: "hi", Author: strings.Repeat("a", domain.MaxAuthorLength+1)},
			wantErr: true,
			field:   "author",
			errMsg:  "author_too_long",
		},
		{
			name:    "missing article id",
			comment: &domain.Comment{Content: "hi", Author: "bob"},
			wantErr: true,
			field:   "article_id",
			errMsg:  "article_id_required",
		},
		{
			name:    "article id too long",
			comment: &domain.Comment{ArticleID: strings.Repeat("9", domain.MaxArticleIDLength+1), Content: "hi", Author: "bob"},
			wantErr: true,
			field:   "article_id",
			errMsg:  "article_id_too_long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ToValidationError(v.ValidateComment(tt.comment))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error %T is not a *domain.ValidationError", err)
			}
			if got := ve.Fields[tt.field]; got != tt.errMsg {
				t.Errorf("Fields[%q] = %q, want %q", tt.field, got, tt.errMsg)
			}
		})
	}
}

func TestValidateComment_ReportsAllFields(t *testing.T) {
	v := NewValidator()

	err := ToValidationError(v.ValidateComment(&domain.Comment{ArticleID: "42"}))

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %v is not a *domain.ValidationError", err)
	}
	if len(ve.Fields) != 2 {
		t.Errorf("Fields = %v, want content and author", ve.Fields)
	}
}

func TestSanitizeComment(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name        string
		in          domain.CreateCommentInput
		wantContent string
		wantAuthor  string
	}{
		{
			name:        "plain text unchanged",
			in:          domain.CreateCommentInput{Content: "hi", Author: "bob"},
			wantContent: "hi",
			wantAuthor:  "bob",
		},
		{
			name:        "whitespace trimmed",
			in:          domain.CreateCommentInput{Content: "  great post \n", Author: "\talice "},
			wantContent: "great post",
			wantAuthor:  "alice",
		},
		{
			name:        "special characters kept verbatim",
			in:          domain.CreateCommentInput{Content: `Tom & Jerry: 5 < 6, it's "quoted"`, Author: "Tom & Jerry"},
			wantContent: `Tom & Jerry: 5 < 6, it's "quoted"`,
			wantAuthor:  "Tom & Jerry",
		},
		{
			name:        "content markup left for validation",
			in:          domain.CreateCommentInput{Content: `nice<script>alert("x")</script>`, Author: "eve"},
			wantContent: `nice<script>alert("x")</script>`,
			wantAuthor:  "eve",
		},
		{
			name:        "markup stripped from author",
			in:          domain.CreateCommentInput{Content: "hi", Author: "<i>O'Brien</i>"},
			wantContent: "hi",
			wantAuthor:  "O'Brien",
		},
		{
			name:        "empty markup author becomes empty",
			in:          domain.CreateCommentInput{Content: "hi", Author: "<b></b>"},
			wantContent: "hi",
			wantAuthor:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.SanitizeComment(tt.in)
			if got.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", got.Content, tt.wantContent)
			}
			if got.Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", got.Author, tt.wantAuthor)
			}
		})
	}
}

// TestSanitizeThenValidate runs a submission through both steps the way
// the comment service does.
func TestSanitizeThenValidate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		in      domain.CreateCommentInput
		field   string
		errCode string
	}{
		{
			name: "plain text with entities accepted",
			in:   domain.CreateCommentInput{Content: `Tom & Jerry: 5 < 6, it's "quoted"`, Author: "Tom & Jerry"},
		},
		{
			name: "allowed formatting accepted",
			in:   domain.CreateCommentInput{Content: "<b>bold</b> and <i>italic</i>", Author: "bob"},
		},
		{
			name: "multi-line content accepted",
			in:   domain.CreateCommentInput{Content: "first line\r\nsecond line\nthird", Author: "bob"},
		},
		{
			name:    "script in content rejected",
			in:      domain.CreateCommentInput{Content: `nice<script>alert("x")</script>`, Author: "eve"},
			field:   "content",
			errCode: "content_markup_not_allowed",
		},
		{
			name:    "event handler attribute rejected",
			in:      domain.CreateCommentInput{Content: `<b onclick="steal()">hi</b>`, Author: "eve"},
			field:   "content",
			errCode: "content_markup_not_allowed",
		},
		{
			name:    "entity encoded markup in author rejected",
			in:      domain.CreateCommentInput{Content: "hi", Author: "&lt;script&gt;alert(1)&lt;/script&gt;"},
			field:   "author",
			errCode: "author_invalid",
		},
		{
			name:    "NUL in content rejected",
			in:      domain.CreateCommentInput{Content: "nul\x00byte", Author: "bob"},
			field:   "content",
			errCode: "content_invalid",
		},
		{
			name:    "NUL in author rejected",
			in:      domain.CreateCommentInput{Content: "hi", Author: "a\x00b"},
			field:   "author",
			errCode: "author_invalid",
		},
		{
			name:    "markup only author is required",
			in:      domain.CreateCommentInput{Content: "hi", Author: "<b></b>"},
			field:   "author",
			errCode: "author_required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := v.SanitizeComment(tt.in)
			comment := &domain.Comment{ArticleID: "42", Content: in.Content, Author: in.Author}

			err := ToValidationError(v.ValidateComment(comment))
			if tt.errCode == "" {
				if err != nil {
					t.Fatalf("ValidateComment() error = %v, want nil", err)
				}
				if comment.Content != strings.TrimSpace(tt.in.Content) {
					t.Errorf("Content = %q, want it stored as submitted", comment.Content)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error %v is not a *domain.ValidationError", err)
			}
			if got := ve.Fields[tt.field]; got != tt.errCode {
				t.Errorf("Fields[%q] = %q, want %q", tt.field, got, tt.errCode)
			}
		})
	}
}

func TestToValidationError(t *testing.T) {
	if err := ToValidationError(nil); err != nil {
		t.Errorf("ToValidationError(nil) = %v, want nil", err)
	}

	other := errors.New("boom")
	if err := ToValidationError(other); err != other {
		t.Errorf("ToValidationError(other) = %v, want it unchanged", err)
	}
}

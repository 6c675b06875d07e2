package restclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"comment-service/internal/domain"
	"comment-service/internal/logger"
	"comment-service/internal/metrics"
)

// DefaultTimeout bounds a single existence check when none is configured.
const DefaultTimeout = 3 * time.Second

// maxDrainBytes limits how much of an unread response body is discarded
// before closing so the connection can be reused.
const maxDrainBytes = 64 << 10

// ArticleClient asks the article service whether an article exists.
type ArticleClient struct {
	BaseURL string
	Client  *http.Client
}

// NewArticleClient creates an ArticleClient for the service at baseURL.
// Every request is bounded by timeout; a non-positive timeout selects
// DefaultTimeout.
func NewArticleClient(baseURL string, timeout time.Duration) *ArticleClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	// Export every result series from the start, not only after the first hit.
	for _, status := range domain.ArticleStatuses {
		metrics.ArticleChecksTotal.WithLabelValues(string(status))
	}
	return &ArticleClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// CheckArticleExists reports whether articleID exists. A 404 is
// ArticleNotFound, a 200 is ArticleExists and anything else, including
// transport errors and timeouts, is ArticleUnknown. It never fails.
func (ac *ArticleClient) CheckArticleExists(ctx context.Context, articleID string) domain.ArticleStatus {
	timer := metrics.NewTimer()
	status, detail := ac.check(ctx, articleID)
	metrics.ObserveArticleCheck(string(status), timer.Seconds())

	log := logger.WithArticleID(ctx, articleID).With(slog.String("result", string(status)))
	if status == domain.ArticleUnknown {
		log.Warn("Could not verify article with article service", slog.String("reason", detail))
	} else {
		log.Debug("Checked article existence")
	}

	return status
}

func (ac *ArticleClient) check(ctx context.Context, articleID string) (domain.ArticleStatus, string) {
	endpoint := fmt.Sprintf("%s/api/articles/%s", ac.BaseURL, url.PathEscape(articleID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ArticleUnknown, err.Error()
	}
	req.Header.Set("Accept", "application/json")
	if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := ac.Client.Do(req)
	if err != nil {
		return domain.ArticleUnknown, err.Error()
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	switch resp.StatusCode {
	case http.StatusOK:
		return domain.ArticleExists, ""
	case http.StatusNotFound:
		return domain.ArticleNotFound, ""
	default:
		return domain.ArticleUnknown, fmt.Sprintf("article service returned status %d", resp.StatusCode)
	}
}

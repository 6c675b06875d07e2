package domain

// ArticleStatus is the outcome of asking the article service whether an
// article exists.
type ArticleStatus string

const (
	ArticleExists   ArticleStatus = "exists"
	ArticleNotFound ArticleStatus = "not_found"
	// ArticleUnknown covers any answer that is neither a success nor a
	// not-found, including network failures and timeouts.
	ArticleUnknown ArticleStatus = "unknown"
)

// ArticleStatuses contains every status the gate can report.
var ArticleStatuses = []ArticleStatus{ArticleExists, ArticleNotFound, ArticleUnknown}

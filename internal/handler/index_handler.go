package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Comment service</title>
</head>
<body>
  <h1>Comment service</h1>
  <p>Manages blog article comments, backed by PostgreSQL.</p>
  <h2>Endpoints</h2>
  <ul>
    <li><code>GET /api/articles/{articleId}/comments</code> list the comments of an article</li>
    <li><code>POST /api/articles/{articleId}/comments</code> add a comment, body <code>{"content": "...", "author": "..."}</code></li>
    <li><code>GET /health</code> service health</li>
    <li><code>GET /metrics</code> Prometheus metrics</li>
  </ul>
</body>
</html>
`

// Index handles GET / with a short HTML description of the API.
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IViewTagger reports the current cache validator for a read view.
// Writes bump the validator through the usecase's view invalidator.

type IViewTagger interface {
	ETag(view string) string
}

// ViewETag serves 304 for conditional requests whose validator still
// matches, and stamps the current one on every response.
func ViewETag(tagger IViewTagger, view string) gin.HandlerFunc {
	return func(c *gin.Context) {
		etag := tagger.ETag(view)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.AbortWithStatus(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Next()
	}
}

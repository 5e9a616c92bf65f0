package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/passmeter/pkg/errors"
	"github.com/jwalitptl/passmeter/pkg/httputil"
)

// SizeLimitConfig represents size limit configuration
type SizeLimitConfig struct {
	MaxBodySize int64 // in bytes
	// Reject renders the response for a declared oversize body. Defaults to
	// the JSON error envelope.
	Reject func(c *gin.Context, err error)
}

func DefaultSizeLimitConfig() SizeLimitConfig {
	return SizeLimitConfig{
		MaxBodySize: 1 << 20, // 1MB
	}
}

// SizeLimit rejects declared oversize bodies up front and caps the rest
// with http.MaxBytesReader, so chunked uploads are bounded too.
func SizeLimit(config SizeLimitConfig) gin.HandlerFunc {
	reject := config.Reject
	if reject == nil {
		reject = httputil.RespondWithError
	}

	return func(c *gin.Context) {
		if c.Request.ContentLength > config.MaxBodySize {
			reject(c, errors.NewPayloadTooLarge(config.MaxBodySize, nil))
			c.Abort()
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxBodySize)
		}

		c.Next()
	}
}

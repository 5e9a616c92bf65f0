package middleware

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/passmeter/pkg/errors"
	"github.com/jwalitptl/passmeter/pkg/httputil"
)

const (
	HeaderAcceptVersion = "Accept-Version"
	HeaderAPIVersion    = "X-API-Version"
	ContextAPIVersion   = "api_version"
)

// VersionConfig represents version middleware configuration
type VersionConfig struct {
	// Current is served when the client does not ask for a version.
	Current   string
	Supported []string
}

func DefaultVersionConfig() VersionConfig {
	return VersionConfig{
		Current:   "1.0",
		Supported: []string{"1.0"},
	}
}

var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)$`)

// Version negotiates the API version from the Accept-Version header and
// echoes the served version in X-API-Version.
func Version(config VersionConfig) gin.HandlerFunc {
	supported := make(map[string]struct{}, len(config.Supported))
	for _, v := range config.Supported {
		supported[v] = struct{}{}
	}

	return func(c *gin.Context) {
		requested := c.GetHeader(HeaderAcceptVersion)
		if requested == "" {
			requested = config.Current
		}

		// Validate version format
		if !versionRegex.MatchString(requested) {
			httputil.RespondWithError(c, errors.NewBadRequest("invalid version format, use major.minor", nil))
			return
		}

		if _, ok := supported[requested]; !ok {
			httputil.RespondWithError(c, errors.NewNotAcceptable(fmt.Sprintf("API version %s not supported", requested), nil))
			return
		}

		c.Set(ContextAPIVersion, requested)
		c.Header(HeaderAPIVersion, requested)

		c.Next()
	}
}

package httputil

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/passmeter/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"bad request", errors.BadRequest("invalid request body", stderrors.New("EOF")), http.StatusBadRequest, "invalid request body"},
		{"too large", errors.NewPayloadTooLarge(16, nil), http.StatusRequestEntityTooLarge, "request body exceeds 16 bytes"},
		{"unknown", stderrors.New("db password leaked"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Set(ContextRequestID, "rid-1")

			RespondWithError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.True(t, c.IsAborted())

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, "rid-1", body.TraceID)
		})
	}
}

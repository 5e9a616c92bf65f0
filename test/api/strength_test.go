package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/passmeter/pkg/security"
)

func TestCheckPasswordFlow(t *testing.T) {
	tests := []struct {
		password string
		score    int
		feedback []string
	}{
		{"password", 0, []string{security.MsgTooCommon}},
		{"PASSWORD", 0, []string{security.MsgTooCommon}},
		{"", 0, []string{security.MsgTooShort, security.MsgCaseMix, security.MsgNoDigit, security.MsgNoSpecial}},
		{"abcdefgh", 2, []string{security.MsgCaseMix, security.MsgNoDigit, security.MsgNoSpecial}},
		{"Abcdefg1", 4, []string{security.MsgNoSpecial}},
		{"Abcdefg1!", 5, []string{}},
	}

	for _, path := range []string{"/check-password", "/api/v1/check-password"} {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s %q", path, tt.password), func(t *testing.T) {
				resp := makeRequest(http.MethodPost, path, map[string]string{"password": tt.password})
				require.True(t, resp.IsSuccess(), "HTTP %d: %s", resp.StatusCode, resp.Body)

				var body struct {
					Score    int      `json:"score"`
					Feedback []string `json:"feedback"`
				}
				require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
				assert.Equal(t, tt.score, body.Score)
				assert.Equal(t, tt.feedback, body.Feedback)
				assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
			})
		}
	}
}

func TestCheckPasswordErrors(t *testing.T) {
	resp := makeRequest(http.MethodPost, "/check-password", `{"pass":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"errors":[{"field":"password","message":"Field is required"}]}`, resp.Body)

	resp = makeRequest(http.MethodPost, "/check-password", `{"password":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, float64(http.StatusBadRequest), resp.Data["code"])
	assert.NotEmpty(t, resp.GetString("trace_id"))

	resp = makeRequest(http.MethodGet, "/check-password", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "route not found", resp.GetString("message"))
}

func TestCheckPasswordTooLarge(t *testing.T) {
	if !inProcess {
		t.Skip("body limit of external servers is unknown")
	}

	resp := makeRequest(http.MethodPost, "/check-password", `{"password":"`+strings.Repeat("a", 2*maxBodyBytes)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, float64(http.StatusRequestEntityTooLarge), resp.Data["code"])
}

func TestGeneratePasswordFlow(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		resp := makeRequest(http.MethodGet, "/api/v1/generate-password", nil)
		require.True(t, resp.IsSuccess(), resp.Body)

		password := resp.GetString("password")
		require.Len(t, password, security.DefaultGeneratedLen)
		for _, r := range password {
			assert.Contains(t, security.Alphabet, string(r))
		}
		seen[password] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestHealthAndMetrics(t *testing.T) {
	resp := makeRequest(http.MethodGet, "/api/v1/health/live", nil)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "UP", resp.GetString("status"))

	resp = makeRequest(http.MethodGet, "/api/v1/health/ready", nil)
	assert.True(t, resp.IsSuccess())

	makeRequest(http.MethodPost, "/check-password", map[string]string{"password": "qwerty"})

	resp = makeRequest(http.MethodGet, "/metrics", nil)
	require.True(t, resp.IsSuccess())
	assert.Contains(t, resp.Body, "passmeter_evaluations_total")
	assert.Contains(t, resp.Body, "passmeter_blacklist_hits_total")
	assert.Contains(t, resp.Body, `surface="api"`)
}

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pilot-logbook/internal/logger"
)

// loggedRequest runs next behind withLogging and returns the decoded log line.
func loggedRequest(t *testing.T, method, target string, next http.HandlerFunc) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	req := httptest.NewRequest(method, target, nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	h := &Handler{logger: logger.Nop()}
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "log: %s", buf.String())
	return line, rr
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		status     int
		body       string
		wantStatus float64
		wantSize   float64
	}{
		{
			name:       "json page",
			method:     http.MethodGet,
			target:     "/api/logs?page=2",
			status:     http.StatusOK,
			body:       `{"logs":[]}`,
			wantStatus: 200,
			wantSize:   11,
		},
		{
			name:       "patch rejected",
			method:     http.MethodPatch,
			target:     "/api/preferences",
			status:     http.StatusBadRequest,
			body:       `{"error":"x"}`,
			wantStatus: 400,
			wantSize:   13,
		},
		{
			name:       "no body",
			method:     http.MethodDelete,
			target:     "/api/airports/favorites/EDDF",
			status:     http.StatusNoContent,
			wantStatus: 204,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, rr := loggedRequest(t, tt.method, tt.target, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.method, line["method"])
			assert.Equal(t, tt.target, line["uri"])
			assert.Equal(t, tt.wantStatus, line["status"])
			assert.Equal(t, tt.wantSize, line["size"])
			assert.Contains(t, line, "duration")
			assert.Equal(t, "info", line["level"])
		})
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	line, rr := loggedRequest(t, http.MethodGet, "/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("v1.0.0"))
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(200), line["status"])
	assert.Equal(t, float64(6), line["size"])
	assert.Equal(t, "v1.0.0", rr.Body.String())
}

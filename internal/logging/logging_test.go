package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", "text").Level)
	assert.Equal(t, logrus.InfoLevel, New("nonsense", "json").Level)
}

func TestRequestLoggerRecordsFailures(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", "json")
	log.Out = &buf

	h := middleware.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["severity"])
	assert.Equal(t, "/boom", line["http.req.path"])
	assert.EqualValues(t, http.StatusInternalServerError, line["http.resp.status"])
	assert.NotEmpty(t, line["http.req.id"])
}

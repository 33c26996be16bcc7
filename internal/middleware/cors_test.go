package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		h := CORS([]string{"*"}, "X-Cart-Session")(next)
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/cart", nil)
		req.Header.Set("Origin", "http://shop.test")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://shop.test", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "X-Cart-Session", rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("disallowed origin gets no headers", func(t *testing.T) {
		h := CORS([]string{"http://shop.test"}, "X-Cart-Session")(next)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.test")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *chi.Mux {
	r := chi.NewRouter()
	NewHandler(newTestService(0)).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeParts(t *testing.T, rec *httptest.ResponseRecorder) []Part {
	t.Helper()
	var parts []Part
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&parts))
	return parts
}

func TestHandlerSearchParts(t *testing.T) {
	r := newTestRouter()

	rec := get(t, r, "/api/v1/catalog/parts?compatibility=cessna&maxPrice=5000")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"p1"}, ids(decodeParts(t, rec)))

	rec = get(t, r, "/api/v1/catalog/parts?minPrice=cheap")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerGetPart(t *testing.T) {
	r := newTestRouter()

	rec := get(t, r, "/api/v1/catalog/parts/p3")
	require.Equal(t, http.StatusOK, rec.Code)
	var p Part
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "GA-3", p.PartNumber)

	rec = get(t, r, "/api/v1/catalog/parts/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerRelatedAndFeatured(t *testing.T) {
	r := newTestRouter()

	rec := get(t, r, "/api/v1/catalog/parts/p1/related?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"p2"}, ids(decodeParts(t, rec)))

	rec = get(t, r, "/api/v1/catalog/parts/nope/related")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeParts(t, rec))

	rec = get(t, r, "/api/v1/catalog/featured")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"p1", "p3", "p5"}, ids(decodeParts(t, rec)))

	rec = get(t, r, "/api/v1/catalog/featured?limit=-3")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerCategoryAndFacets(t *testing.T) {
	r := newTestRouter()

	rec := get(t, r, "/api/v1/catalog/categories/"+url.PathEscape("Engine Parts")+"/parts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"p1", "p2"}, ids(decodeParts(t, rec)))

	rec = get(t, r, "/api/v1/catalog/facets")
	require.Equal(t, http.StatusOK, rec.Code)
	var f Facets
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&f))
	assert.Contains(t, f.Manufacturers, "Garmin")
}

func TestParseFilters(t *testing.T) {
	q := url.Values{}
	q.Set("search", "starter")
	q.Set("condition", "Used")
	q.Set("minPrice", "10.5")

	f, err := ParseFilters(q)
	require.NoError(t, err)
	assert.Equal(t, "starter", f.Search)
	assert.Equal(t, ConditionUsed, f.Condition)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 10.5, *f.MinPrice)
	assert.Nil(t, f.MaxPrice)
}

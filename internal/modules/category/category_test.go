package category

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type partsByName map[string][]catalog.Part

func (p partsByName) PartsByCategory(ctx context.Context, category string) ([]catalog.Part, error) {
	if parts, ok := p[category]; ok {
		return parts, nil
	}
	return []catalog.Part{}, nil
}

func TestBundledCategories(t *testing.T) {
	repo, err := NewFixtureRepository()
	require.NoError(t, err)
	svc := NewService(repo, 0)

	all, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 8)

	c, err := svc.GetCategoryBySlug(context.Background(), "landing-gear")
	require.NoError(t, err)
	assert.Equal(t, "Landing Gear", c.Name)

	_, err = svc.GetCategoryBySlug(context.Background(), "Landing Gear")
	assert.True(t, errors.Is(err, ErrCategoryNotFound))
}

func TestHandler(t *testing.T) {
	svc := NewService(NewStaticRepository([]Category{
		{ID: "c1", Name: "Avionics", Slug: "avionics"},
		{ID: "c2", Name: "Interior", Slug: "interior"},
	}), 0)
	r := chi.NewRouter()
	NewHandler(svc, partsByName{"Avionics": {{ID: "p3"}}}).RegisterRoutes(r)

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := get("/api/v1/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []Category
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	assert.Len(t, all, 2)

	rec = get("/api/v1/categories/avionics/parts")
	require.Equal(t, http.StatusOK, rec.Code)
	var parts []catalog.Part
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&parts))
	require.Len(t, parts, 1)
	assert.Equal(t, "p3", parts[0].ID)

	rec = get("/api/v1/categories/interior/parts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get("/api/v1/categories/engines").Code)
	assert.Equal(t, http.StatusNotFound, get("/api/v1/categories/engines/parts").Code)
}

func TestServiceWaitsForLatency(t *testing.T) {
	svc := NewService(NewStaticRepository([]Category{{ID: "c1", Slug: "avionics"}}), 30*time.Millisecond)

	start := time.Now()
	_, err := svc.GetCategoryBySlug(context.Background(), "avionics")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	_, err = NewService(NewStaticRepository(nil), time.Minute).ListCategories(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

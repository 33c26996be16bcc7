package catalog

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/parts", h.searchParts) // ?search=&category=&manufacturer=&condition=&minPrice=&maxPrice=&compatibility=
		r.Get("/parts/{id}", h.getPart)
		r.Get("/parts/{id}/related", h.relatedParts)
		r.Get("/featured", h.featuredParts)
		r.Get("/categories/{category}/parts", h.partsByCategory)
		r.Get("/facets", h.facets)
	})
}

// ParseFilters reads ProductFilters from query parameters.
func ParseFilters(q url.Values) (ProductFilters, error) {
	f := ProductFilters{
		Category:      q.Get("category"),
		Manufacturer:  q.Get("manufacturer"),
		Condition:     Condition(q.Get("condition")),
		Compatibility: q.Get("compatibility"),
		Search:        q.Get("search"),
	}
	var err error
	if f.MinPrice, err = optionalFloat(q, "minPrice"); err != nil {
		return ProductFilters{}, err
	}
	if f.MaxPrice, err = optionalFloat(q, "maxPrice"); err != nil {
		return ProductFilters{}, err
	}
	return f, nil
}

func optionalFloat(q url.Values, key string) (*float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Errorf("%s must be a number", key)
	}
	return &v, nil
}

// QueryLimit reads a positive ?limit= value, falling back to def.
func QueryLimit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}
	return n, nil
}

func (h *Handler) searchParts(w http.ResponseWriter, r *http.Request) {
	f, err := ParseFilters(r.URL.Query())
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	parts, err := h.service.SearchParts(r.Context(), f)
	if err != nil {
		RespondError(w, err)
		return
	}
	respond(w, http.StatusOK, parts)
}

func (h *Handler) getPart(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetPart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) relatedParts(w http.ResponseWriter, r *http.Request) {
	limit, err := QueryLimit(r, DefaultRelatedLimit)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	parts, err := h.service.RelatedParts(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		RespondError(w, err)
		return
	}
	respond(w, http.StatusOK, parts)
}

func (h *Handler) featuredParts(w http.ResponseWriter, r *http.Request) {
	limit, err := QueryLimit(r, DefaultFeaturedLimit)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	parts, err := h.service.FeaturedParts(r.Context(), limit)
	if err != nil {
		RespondError(w, err)
		return
	}
	respond(w, http.StatusOK, parts)
}

func (h *Handler) partsByCategory(w http.ResponseWriter, r *http.Request) {
	parts, err := h.service.PartsByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		RespondError(w, err)
		return
	}
	respond(w, http.StatusOK, parts)
}

func (h *Handler) facets(w http.ResponseWriter, r *http.Request) {
	f, err := h.service.Facets(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	respond(w, http.StatusOK, f)
}

// RespondError maps catalog errors onto HTTP statuses.
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrPartNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrInvalidListing):
		status = http.StatusBadRequest
	}
	respond(w, status, map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

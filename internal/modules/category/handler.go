package category

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// PartsSource lists the parts filed under a category name.
type PartsSource interface {
	PartsByCategory(ctx context.Context, category string) ([]catalog.Part, error)
}

type Handler struct {
	service Service
	parts   PartsSource
}

func NewHandler(service Service, parts PartsSource) *Handler {
	return &Handler{service: service, parts: parts}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Get("/{slug}", h.getCategory)
		r.Get("/{slug}/parts", h.categoryParts)
	})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) categoryParts(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCategoryBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, err)
		return
	}
	parts, err := h.parts.PartsByCategory(r.Context(), c.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, parts)
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrCategoryNotFound) {
		status = http.StatusNotFound
	}
	respond(w, status, map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

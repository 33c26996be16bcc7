package seller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"
	"github.com/georgemunganga/aeroparts-backend/internal/modules/inventory"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// SummaryProvider computes the stock dashboard of one seller.
type SummaryProvider interface {
	SellerSummary(ctx context.Context, sellerID string) (inventory.Summary, error)
}

type Handler struct {
	service Service
	catalog catalog.Service
	summary SummaryProvider
}

func NewHandler(service Service, parts catalog.Service, summary SummaryProvider) *Handler {
	return &Handler{service: service, catalog: parts, summary: summary}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/sellers", func(r chi.Router) {
		r.Get("/", h.listSellers)
		r.Route("/{sellerId}", func(r chi.Router) {
			r.Get("/", h.getSeller)
			r.Get("/parts", h.sellerParts)
			r.Get("/dashboard", h.dashboard)
			r.Get("/listings", h.listListings)
			r.Post("/listings", h.createListing)
			r.Put("/listings/{partId}", h.updateListing)
			r.Delete("/listings/{partId}", h.deleteListing)
		})
	})
}

func (h *Handler) listSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.service.ListSellers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, sellers)
}

func (h *Handler) getSeller(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.GetSeller(r.Context(), chi.URLParam(r, "sellerId"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, s)
}

// seller resolves the {sellerId} path parameter, writing a 404 when the
// seller is unknown.
func (h *Handler) seller(w http.ResponseWriter, r *http.Request) (Seller, bool) {
	s, err := h.service.GetSeller(r.Context(), chi.URLParam(r, "sellerId"))
	if err != nil {
		respondError(w, err)
		return Seller{}, false
	}
	return s, true
}

func (h *Handler) sellerParts(w http.ResponseWriter, r *http.Request) {
	s, ok := h.seller(w, r)
	if !ok {
		return
	}
	parts, err := h.catalog.PartsBySeller(r.Context(), s.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, parts)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := h.seller(w, r)
	if !ok {
		return
	}
	summary, err := h.summary.SellerSummary(r.Context(), s.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) listListings(w http.ResponseWriter, r *http.Request) {
	s, ok := h.seller(w, r)
	if !ok {
		return
	}
	parts, err := h.catalog.PartsBySeller(r.Context(), s.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, MatchListings(parts, r.URL.Query().Get("q")))
}

// MatchListings keeps the parts whose name or part number contains q,
// ignoring case. An empty q keeps everything.
func MatchListings(parts []catalog.Part, q string) []catalog.Part {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]catalog.Part, 0, len(parts))
	for _, p := range parts {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.PartNumber), q) {
			out = append(out, p)
		}
	}
	return out
}

func decodeListing(w http.ResponseWriter, r *http.Request) (catalog.ListingRequest, bool) {
	var req catalog.ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return req, false
	}
	return req, true
}

func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) {
	s, ok := h.seller(w, r)
	if !ok {
		return
	}
	req, ok := decodeListing(w, r)
	if !ok {
		return
	}
	part, err := h.catalog.CreateListing(r.Context(), s.ID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, part)
}

func (h *Handler) updateListing(w http.ResponseWriter, r *http.Request) {
	s, ok := h.seller(w, r)
	if !ok {
		return
	}
	req, ok := decodeListing(w, r)
	if !ok {
		return
	}
	part, err := h.catalog.UpdateListing(r.Context(), s.ID, chi.URLParam(r, "partId"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, part)
}

func (h *Handler) deleteListing(w http.ResponseWriter, r *http.Request) {
	s, ok := h.seller(w, r)
	if !ok {
		return
	}
	if err := h.catalog.DeleteListing(r.Context(), s.ID, chi.URLParam(r, "partId")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrSellerNotFound) {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	catalog.RespondError(w, err)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/georgemunganga/aeroparts-backend/internal/modules/auth"
	"github.com/georgemunganga/aeroparts-backend/internal/modules/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// PartLookup resolves the current catalog record of a part.
type PartLookup interface {
	GetPart(ctx context.Context, id string) (catalog.Part, error)
}

// SessionIssuer mints and checks session tokens.
type SessionIssuer interface {
	NewSession() (sessionID, token string, err error)
	Verify(token string) (string, error)
}

// Handler exposes the shopper's cart. The cart itself never refuses a
// quantity; this handler rejects requests that would exceed current stock.
type Handler struct {
	sessions *Sessions
	parts    PartLookup
	issuer   SessionIssuer
}

func NewHandler(sessions *Sessions, parts PartLookup, issuer SessionIssuer) *Handler {
	return &Handler{sessions: sessions, parts: parts, issuer: issuer}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Delete("/", h.clearCart)
		r.Post("/items", h.addItem)
		r.Put("/items/{partId}", h.updateItem)
		r.Delete("/items/{partId}", h.removeItem)
	})
}

// store resolves the caller's session, starting a new one when the request
// carries no valid token. The token in use is always echoed back.
func (h *Handler) store(w http.ResponseWriter, r *http.Request) (*Store, error) {
	token := r.Header.Get(auth.HeaderSession)
	sessionID, err := h.issuer.Verify(token)
	if token == "" || err != nil {
		sessionID, token, err = h.issuer.NewSession()
		if err != nil {
			return nil, err
		}
	}
	w.Header().Set(auth.HeaderSession, token)
	return h.sessions.Get(r.Context(), sessionID), nil
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	st, err := h.store(w, r)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, st.Snapshot())
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PartID   string `json:"partId"`
		Quantity *int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	qty := 1
	if body.Quantity != nil {
		qty = *body.Quantity
	}
	if body.PartID == "" || qty <= 0 {
		respond(w, http.StatusBadRequest, map[string]string{"error": "partId and a positive quantity are required"})
		return
	}

	st, err := h.store(w, r)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	part, err := h.parts.GetPart(r.Context(), body.PartID)
	if err != nil {
		catalog.RespondError(w, err)
		return
	}
	if want, ok := st.AddWithin(r.Context(), part, qty, part.Stock); !ok {
		respond(w, http.StatusConflict, map[string]string{
			"error": fmt.Sprintf("insufficient stock: requested %d, available %d", want, part.Stock),
		})
		return
	}
	respond(w, http.StatusOK, st.Snapshot())
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	partID := chi.URLParam(r, "partId")
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	st, err := h.store(w, r)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if body.Quantity > 0 {
		part, err := h.parts.GetPart(r.Context(), partID)
		switch {
		case errors.Is(err, catalog.ErrPartNotFound):
			// Gone from the catalog; the cart line (if any) is still editable.
		case err != nil:
			catalog.RespondError(w, err)
			return
		case body.Quantity > part.Stock:
			respond(w, http.StatusConflict, map[string]string{
				"error": fmt.Sprintf("insufficient stock: requested %d, available %d", body.Quantity, part.Stock),
			})
			return
		}
	}

	st.UpdateQuantity(r.Context(), partID, body.Quantity)
	respond(w, http.StatusOK, st.Snapshot())
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	st, err := h.store(w, r)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	st.RemoveFromCart(r.Context(), chi.URLParam(r, "partId"))
	respond(w, http.StatusOK, st.Snapshot())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	st, err := h.store(w, r)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	st.ClearCart(r.Context())
	respond(w, http.StatusOK, st.Snapshot())
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

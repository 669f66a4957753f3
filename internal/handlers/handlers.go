// Package handlers wires the HTTP surface: the return submission
// endpoint, the catalog JSON API, the admin API, and static serving for
// the built frontend.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/myokyal/loopify/internal/catalog"
	"github.com/myokyal/loopify/internal/label"
	"github.com/myokyal/loopify/internal/returns"
	"github.com/myokyal/loopify/internal/reward"
	"github.com/myokyal/loopify/internal/storage"
	"github.com/myokyal/loopify/internal/store"
	"github.com/myokyal/loopify/internal/token"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	store    store.Store
	uploader storage.Uploader
	tokens   *token.Service
	adminKey string
	tokenTTL time.Duration
}

// New creates a new Handler.
func New(st store.Store, up storage.Uploader, tokens *token.Service, adminKey string, tokenTTL time.Duration) *Handler {
	return &Handler{
		store:    st,
		uploader: up,
		tokens:   tokens,
		adminKey: adminKey,
		tokenTTL: tokenTTL,
	}
}

// submitReturnReq is the wire shape the frontend submits. shipping is a
// raw message because client variants send the string sentinel "N/A"
// instead of an address object when the method is dropoff.
type submitReturnReq struct {
	Selected returns.Selection `json:"selected"`
	Shipping json.RawMessage   `json:"shipping,omitempty"`
	Photo    string            `json:"photo,omitempty"`
}

// ProcessReturn persists a return request, uploads the optional photo,
// and responds with the generated label document.
// POST /api/return
func (h *Handler) ProcessReturn(w http.ResponseWriter, r *http.Request) {
	var req submitReturnReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	shipping, err := decodeShipping(req.Shipping)
	if err != nil {
		jsonError(w, "invalid shipping address", http.StatusBadRequest)
		return
	}

	ret := returns.Request{
		Selection: req.Selected,
		Shipping:  shipping,
		Photo:     req.Photo,
	}
	if err := ret.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 1. Persist. Failure here is fatal to the request: no photo upload
	// is attempted and no label is generated.
	id, err := h.store.Create(r.Context(), &ret)
	if err != nil {
		log.Printf("error persisting return: %v", err)
		jsonErrorDetails(w, "Failed to process return", err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("saved return %s", id)

	// 2. Best-effort photo upload. A failure is logged and swallowed:
	// the return record stays, just without a photo URL.
	if req.Photo != "" {
		if photoURL := h.uploadPhoto(r.Context(), id, req.Photo); photoURL != "" {
			ret.PhotoURL = photoURL
		}
	}

	// 3. Generate the label from the persisted snapshot.
	data := label.FromRequest(&ret)
	body, contentType, filename, err := renderLabel(data, r.Header.Get("Accept"))
	if err != nil {
		log.Printf("error generating label for return %s: %v", id, err)
		jsonErrorDetails(w, "Failed to process return", "label generation failed", http.StatusInternalServerError)
		return
	}

	// 4. Return the document for client-side download.
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("error writing label response: %v", err)
	}
}

// uploadPhoto decodes and uploads the photo, then records its URL on the
// return. Every failure path logs and returns "" without failing the
// submission.
func (h *Handler) uploadPhoto(ctx context.Context, id, photo string) string {
	data, err := storage.DecodeDataURL(photo)
	if err != nil {
		log.Printf("error decoding photo for return %s: %v", id, err)
		return ""
	}
	url, err := h.uploader.UploadPhoto(ctx, id, data)
	if err != nil {
		log.Printf("error uploading photo for return %s: %v", id, err)
		return ""
	}
	if err := h.store.SetPhotoURL(ctx, id, url); err != nil {
		log.Printf("error recording photo url for return %s: %v", id, err)
		return ""
	}
	log.Printf("uploaded photo for return %s", id)
	return url
}

// decodeShipping parses the shipping field, treating null, absence, and
// the "N/A" sentinel as no address.
func decodeShipping(raw json.RawMessage) (*returns.ShippingAddress, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '"' {
		// sentinel string, e.g. "N/A"
		return nil, nil
	}
	var addr returns.ShippingAddress
	if err := json.Unmarshal(trimmed, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// renderLabel picks the label format from the Accept header. PDF is the
// default; text/html callers get the standalone printable page.
func renderLabel(d label.Data, accept string) (body []byte, contentType, filename string, err error) {
	if strings.Contains(accept, "text/html") && !strings.Contains(accept, "application/pdf") {
		body, err = label.HTML(d)
		return body, "text/html; charset=utf-8", label.HTMLFilename, err
	}
	body, err = label.PDF(d)
	return body, "application/pdf", label.PDFFilename, err
}

// --- Catalog API (JSON) ---

type catalogResp struct {
	Categories []catalog.Category        `json:"categories"`
	Items      map[string][]catalog.Item `json:"items"`
	Conditions []catalog.Condition       `json:"conditions"`
}

// ListItems returns the full item catalog.
// GET /api/items
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	resp := catalogResp{
		Categories: catalog.Categories(),
		Items:      make(map[string][]catalog.Item),
		Conditions: catalog.Conditions(),
	}
	for _, cat := range resp.Categories {
		resp.Items[cat.ID] = catalog.ItemsByCategory(cat.ID)
	}
	jsonOK(w, http.StatusOK, resp)
}

// ListDropoffs returns the fixed drop-off points.
// GET /api/dropoffs
func (h *Handler) ListDropoffs(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, http.StatusOK, catalog.DropoffPoints())
}

// QuoteReward computes a reward estimate for an item/condition pair.
// GET /api/reward?category=electronics&item=phone&condition=good
func (h *Handler) QuoteReward(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	est := reward.Calculate(q.Get("category"), q.Get("item"), q.Get("condition"))
	jsonOK(w, http.StatusOK, est)
}

// --- Admin API ---

type adminTokenReq struct {
	Key string `json:"key"`
}

type adminTokenResp struct {
	Token string `json:"token"`
}

// AdminToken exchanges the configured admin key for a bearer token.
// POST /api/admin/token
func (h *Handler) AdminToken(w http.ResponseWriter, r *http.Request) {
	if h.adminKey == "" {
		jsonError(w, "admin access not configured", http.StatusServiceUnavailable)
		return
	}

	var req adminTokenReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Key != h.adminKey {
		jsonError(w, "invalid admin key", http.StatusUnauthorized)
		return
	}

	tok, err := h.tokens.Generate("admin", h.tokenTTL)
	if err != nil {
		log.Printf("error generating admin token: %v", err)
		jsonError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}
	jsonOK(w, http.StatusOK, adminTokenResp{Token: tok})
}

// AdminListReturns lists all persisted returns, newest first.
// GET /api/admin/returns
func (h *Handler) AdminListReturns(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("error listing returns: %v", err)
		jsonError(w, "failed to list returns", http.StatusInternalServerError)
		return
	}
	jsonOK(w, http.StatusOK, list)
}

// AdminGetReturn fetches one return by ID.
// GET /api/admin/returns/{id}
func (h *Handler) AdminGetReturn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ret, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "return not found", http.StatusNotFound)
			return
		}
		log.Printf("error fetching return %s: %v", id, err)
		jsonError(w, "failed to fetch return", http.StatusInternalServerError)
		return
	}
	jsonOK(w, http.StatusOK, ret)
}

// --- JSON helpers ---

func jsonOK(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func jsonErrorDetails(w http.ResponseWriter, msg, details string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg, "details": details})
}

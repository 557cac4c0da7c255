package furnace

import (
	"encoding/json"
	"net/http"

	"Smeltline/internal/catalog"
)

type Handler struct {
	Sessions *Store
}

// SessionRequest starts or resets a design session. The preset names a
// catalog coefficient set; positive fields in Coefficients override it
// field by field without touching the catalog.
type SessionRequest struct {
	Input
	Preset       string                 `json:"preset"`
	Coefficients catalog.CoefficientSet `json:"coefficients"`
}

type OverrideRequest struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

func ResolveCoefficients(req SessionRequest) (catalog.CoefficientSet, error) {
	if req.Preset == "" {
		req.Preset = "custom"
	}
	c, err := catalog.Furnace(req.Preset)
	if err != nil {
		return catalog.CoefficientSet{}, err
	}
	if req.Coefficients.Ke > 0 {
		c.Ke = req.Coefficients.Ke
	}
	if req.Coefficients.J > 0 {
		c.J = req.Coefficients.J
	}
	if req.Coefficients.Ky > 0 {
		c.Ky = req.Coefficients.Ky
	}
	if req.Coefficients.Ki > 0 {
		c.Ki = req.Coefficients.Ki
	}
	if req.Coefficients.Kh > 0 {
		c.Kh = req.Coefficients.Kh
	}
	if req.Coefficients.DensityKGM3 > 0 {
		c.DensityKGM3 = req.Coefficients.DensityKGM3
	}
	return c, nil
}

func userID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value("userID").(int)
	return id, ok && id != 0
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	c, err := ResolveCoefficients(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	design, err := h.Sessions.Reset(uid, req.Input, c)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(design)
}

func (h *Handler) Override(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	design, err := h.Sessions.Override(uid, req.Field, req.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(design)
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	snap, err := h.Sessions.Snapshot(uid)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

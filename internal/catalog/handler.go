package catalog

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type furnaceEntry struct {
	Name         string         `json:"name"`
	Coefficients CoefficientSet `json:"coefficients"`
}

func (h *Handler) Furnaces(w http.ResponseWriter, r *http.Request) {
	out := make([]furnaceEntry, 0, len(furnaceNames))
	for _, name := range furnaceNames {
		out = append(out, furnaceEntry{Name: name, Coefficients: furnacePresets[name]})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

type materialEntry struct {
	Name string `json:"name"`
	Material
}

func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	out := make([]materialEntry, 0, len(materialNames))
	for _, name := range materialNames {
		out = append(out, materialEntry{Name: name, Material: materials[name]})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) ThreadTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Threads())
}

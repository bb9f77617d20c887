package repo

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/halledega/StudWalls/internal/studwall"
)

// ResultsHandler exposes the calculate-save-finalize workflow: run a wall,
// keep every candidate in the working store, then commit one per story.
type ResultsHandler struct {
	Calc  *studwall.Calculator
	Store *ResultStore
}

type saveResponse struct {
	Result *studwall.Result `json:"result"`
	IDs    map[int][]int64  `json:"ids"` // level -> stored row ids, result order
}

// Save calculates a wall and stores the full candidate set, replacing any
// previous run for the same wall name.
func (h *ResultsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input studwall.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Name == "" {
		http.Error(w, "Wall name required", http.StatusBadRequest)
		return
	}

	res, err := h.Calc.Calculate(input)
	if err != nil {
		var cfg *studwall.ConfigError
		if errors.As(err, &cfg) {
			http.Error(w, cfg.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}

	ids, err := h.Store.SaveWall(res)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saveResponse{Result: res, IDs: ids})
}

type finalizeRequest struct {
	Wall  string `json:"wall"`
	Level int    `json:"level"`
	ID    int64  `json:"id"`
}

// Finalize commits one stored candidate as the final design for a story.
func (h *ResultsHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	var req finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Wall == "" {
		http.Error(w, "Wall name required", http.StatusBadRequest)
		return
	}
	if err := h.Store.Finalize(req.Wall, req.Level, req.ID); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Design finalized"))
}

// Finals returns the committed design per story for the named wall.
func (h *ResultsHandler) Finals(w http.ResponseWriter, r *http.Request) {
	wall := r.URL.Query().Get("wall")
	if wall == "" {
		http.Error(w, "wall query parameter required", http.StatusBadRequest)
		return
	}
	finals, err := h.Store.Finals(wall)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(finals)
}

// LibraryHandler serves the seeded material and section catalogs.
type LibraryHandler struct {
	Store *LibraryStore
}

func (h *LibraryHandler) Materials(w http.ResponseWriter, r *http.Request) {
	mats, err := h.Store.Materials()
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mats)
}

func (h *LibraryHandler) Sections(w http.ResponseWriter, r *http.Request) {
	secs, err := h.Store.Sections()
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(secs)
}

package studwall

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct {
	Engine *Calculator
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := h.Engine.Calculate(input)
	if err != nil {
		var cfg *ConfigError
		if errors.As(err, &cfg) {
			http.Error(w, cfg.Msg, http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type BatchInput struct {
	Items []Input `json:"items"`
}

type BatchResult struct {
	Results []*Result `json:"results"`
}

// CalculateBatch runs the design pass for several walls. A ConfigError in
// any wall aborts the batch, since partial batches are ambiguous to report.
func (c *Calculator) CalculateBatch(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, &ConfigError{Msg: "no items"}
	}
	out := BatchResult{Results: make([]*Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := c.Calculate(item)
		if err != nil {
			return BatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var input BatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := h.Engine.CalculateBatch(input)
	if err != nil {
		var cfg *ConfigError
		if errors.As(err, &cfg) {
			http.Error(w, cfg.Msg, http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

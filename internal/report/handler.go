package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/halledega/StudWalls/internal/studwall"
)

type Input struct {
	Meta
	Wall studwall.Input `json:"wall"`
}

type Handler struct {
	Calc *studwall.Calculator
}

// Generate runs the wall calculation and streams the PDF back.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := h.Calc.Calculate(input.Wall)
	if err != nil {
		var cfg *studwall.ConfigError
		if errors.As(err, &cfg) {
			http.Error(w, cfg.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"studwall-report.pdf\"")
	if err := Render(w, input.Meta, res); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

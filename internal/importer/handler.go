package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/halledega/StudWalls/internal/studwall"
	"github.com/halledega/StudWalls/internal/units"
)

type Handler struct {
	Calc *studwall.Calculator
}

type WallImportResult struct {
	Count   int                `json:"count"`
	Skipped int                `json:"skipped"`
	Results []*studwall.Result `json:"results"`
}

// Walls imports a workbook of wall definitions, one wall per row, and
// calculates each. Rows that fail to parse or fail validation are
// skipped and counted, not fatal.
func (h *Handler) Walls(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []*studwall.Result
	skipped := 0
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 5 {
			continue
		}
		input, err := parseWallRow(row)
		if err != nil {
			skipped++
			continue
		}
		res, err := h.Calc.Calculate(input)
		if err != nil {
			skipped++
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(WallImportResult{Count: len(results), Skipped: skipped, Results: results})
}

func parseWallRow(row []string) (studwall.Input, error) {
	// expected: name, units, heights(a;b;c roof first), roof_dead, roof_snow,
	// floor_dead, floor_live, partitions, wall_sw, roof_trib, floor_trib
	if len(row) < 5 {
		return studwall.Input{}, fmt.Errorf("bad row")
	}
	name := strings.TrimSpace(row[0])
	sys := units.System(strings.ToLower(strings.TrimSpace(row[1])))

	heights, err := parseHeights(row[2])
	if err != nil {
		return studwall.Input{}, err
	}
	roofDead, err := toFloat(row[3])
	if err != nil {
		return studwall.Input{}, err
	}
	roofSnow, err := toFloat(row[4])
	if err != nil {
		return studwall.Input{}, err
	}
	in := studwall.Input{
		Name:        name,
		Units:       sys,
		WallHeights: heights,
		RoofDead:    roofDead,
		RoofSnow:    roofSnow,
		RoofTrib:    1,
	}
	if len(row) > 5 && row[5] != "" {
		in.FloorDead, _ = toFloat(row[5])
	}
	if len(row) > 6 && row[6] != "" {
		in.FloorLive, _ = toFloat(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		in.Partitions, _ = toFloat(row[7])
	}
	if len(row) > 8 && row[8] != "" {
		in.WallSW, _ = toFloat(row[8])
	}
	if len(row) > 9 && row[9] != "" {
		in.RoofTrib, _ = toFloat(row[9])
	}
	if len(row) > 10 && row[10] != "" {
		in.FloorTrib, _ = toFloat(row[10])
	}
	return in, nil
}

func parseHeights(s string) ([]float64, error) {
	parts := strings.Split(s, ";")
	heights := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		h, err := toFloat(p)
		if err != nil {
			return nil, err
		}
		heights = append(heights, h)
	}
	if len(heights) == 0 {
		return nil, fmt.Errorf("no heights")
	}
	return heights, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

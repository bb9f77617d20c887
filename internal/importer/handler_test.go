package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/halledega/StudWalls/internal/units"
	"github.com/halledega/StudWalls/internal/wood"

	"github.com/halledega/StudWalls/internal/studwall"
)

func TestParseWallRow(t *testing.T) {
	row := []string{"wall A", "imperial", "10; 10", "22", "69", "35", "40", "20", "12", "2", "5"}
	in, err := parseWallRow(row)
	require.NoError(t, err)
	require.Equal(t, "wall A", in.Name)
	require.Equal(t, units.Imperial, in.Units)
	require.Equal(t, []float64{10, 10}, in.WallHeights)
	require.Equal(t, 22.0, in.RoofDead)
	require.Equal(t, 69.0, in.RoofSnow)
	require.Equal(t, 35.0, in.FloorDead)
	require.Equal(t, 40.0, in.FloorLive)
	require.Equal(t, 20.0, in.Partitions)
	require.Equal(t, 12.0, in.WallSW)
	require.Equal(t, 2.0, in.RoofTrib)
	require.Equal(t, 5.0, in.FloorTrib)
}

func TestParseWallRowShort(t *testing.T) {
	// Only the required columns: a single-story metric wall.
	in, err := parseWallRow([]string{"shed", "metric", "3", "1.0", "2.2"})
	require.NoError(t, err)
	require.Equal(t, []float64{3}, in.WallHeights)
	require.Equal(t, 1.0, in.RoofTrib) // default tributary
}

func TestParseWallRowBadHeights(t *testing.T) {
	_, err := parseWallRow([]string{"wall", "metric", "tall", "1", "2"})
	require.Error(t, err)
}

func makeWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"name", "units", "heights", "roof_dead", "roof_snow",
		"floor_dead", "floor_live", "partitions", "wall_sw", "roof_trib", "floor_trib"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func uploadForm(t *testing.T, book *bytes.Buffer) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "walls.xlsx")
	require.NoError(t, err)
	_, err = part.Write(book.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestWallsImport(t *testing.T) {
	h := &Handler{Calc: studwall.NewCalculator(wood.DefaultLibrary())}

	book := makeWorkbook(t, [][]interface{}{
		{"wall A", "imperial", "10;10", 22, 69, 35, 40, 20, 12, 2, 5},
		{"wall B", "metric", "3000", 1.0, 2.2, "", "", "", 0.6, 1.5},
		{"broken", "metric", "not-a-height", 1, 2},
	})
	body, ctype := uploadForm(t, book)

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/studwall/import", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	h.Walls(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out WallImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, 2, out.Count)
	require.Equal(t, 1, out.Skipped)
	require.Len(t, out.Results, 2)
	require.Equal(t, "wall A", out.Results[0].Name)
	require.Len(t, out.Results[0].Stories, 2)
	require.Equal(t, "wall B", out.Results[1].Name)
}

func TestWallsImportRequiresFile(t *testing.T) {
	h := &Handler{Calc: studwall.NewCalculator(wood.DefaultLibrary())}

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/studwall/import", nil)
	rec := httptest.NewRecorder()
	h.Walls(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

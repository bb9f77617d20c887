package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/halledega/StudWalls/internal/studwall"
)

// Meta is the title block printed at the top of the report.
type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Render writes a design summary PDF for a calculated wall. Each story
// gets a row with its selected stud and the governing check numbers.
func Render(w io.Writer, meta Meta, res *studwall.Result) error {
	if meta.Title == "" {
		meta.Title = "Stud Wall Design Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Wall: %s", res.Name))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	writeSummary(pdf, res)
	writeDetails(pdf, res)

	if meta.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func writeSummary(pdf *gofpdf.Fpdf, res *studwall.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Selected Studs")
	pdf.Ln(8)

	headers := []string{"Level", "Stud", "Material", "Spacing", "Pf (kN)", "Pr (kN)", "D/C", "Combo"}
	widths := []float64{14, 26, 34, 18, 20, 20, 16, 42}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, story := range res.Stories {
		opt := story.OptimalResult()
		if opt == nil {
			cells := []string{fmt.Sprintf("%d", story.Level), "none", "no section works", "-", "-", "-", "-", "-"}
			for i, c := range cells {
				pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
			continue
		}
		cells := []string{
			fmt.Sprintf("%d", story.Level),
			opt.Label(),
			opt.Material,
			fmt.Sprintf("%.0f mm", opt.Spacing),
			fmt.Sprintf("%.2f", opt.PfKN),
			fmt.Sprintf("%.2f", opt.PrKN),
			fmt.Sprintf("%.3f", opt.DCRatio),
			opt.GoverningCombo,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeDetails(pdf *gofpdf.Fpdf, res *studwall.Result) {
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Modification Factors and Loads")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	for _, story := range res.Stories {
		opt := story.OptimalResult()
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Level %d  (wall height %.0f mm)", story.Level, story.HeightMM))
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 5, fmt.Sprintf("Specified loads: DL = %.2f kN/m, LL = %.2f kN/m, SL = %.2f kN/m",
			story.Loads.Dead, story.Loads.Live, story.Loads.Snow))
		pdf.Ln(5)
		if opt == nil {
			pdf.Cell(0, 5, "No candidate in the search space satisfies this level.")
			pdf.Ln(7)
			continue
		}
		pdf.Cell(0, 5, fmt.Sprintf("Kd = %.3f  Kh = %.2f  Ksc = %.2f  Kse = %.2f  Kt = %.2f  Kzc = %.3f  Kc = %.3f",
			opt.KFactors.Kd, opt.KFactors.Kh, opt.KFactors.Ksc, opt.KFactors.Kse, opt.KFactors.Kt, opt.Kzc, opt.Kc))
		pdf.Ln(5)
		pdf.Cell(0, 5, fmt.Sprintf("Slenderness: Cc = %.1f (strong axis), %.1f (weak axis)", opt.CcStrong, opt.CcWeak))
		pdf.Ln(7)
	}
}

package infra

// pdf.go — BOM report generation using go-pdf/fpdf.
// Produces an A4 report with:
//   - Project header (name, client, generation date)
//   - One table per category (part id, name, qty, status, vendor, price)
//   - Totals footer (part count, material cost)
//
// The output file is saved to storagePath/bom_{sessionID}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/rkashyapa/automanage-industrial-hub/internal/model"
)

// BOMReport is everything the PDF needs, decoupled from the live store.
type BOMReport struct {
	SessionID    string
	ProjectName  string
	ClientName   string
	Categories   []model.Category
	MaterialCost decimal.Decimal
}

// GenerateBOMPDF renders the report and returns the absolute path of the file.
// storagePath is created if needed.
func GenerateBOMPDF(report BOMReport, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("bom_%s.pdf", report.SessionID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "Bill of Materials", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if report.ProjectName != "" {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Project: %s", report.ProjectName), "", 1, "L", false, 0, "")
	}
	if report.ClientName != "" {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Client: %s", report.ClientName), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, time.Now().Format("02 Jan 2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Column widths sum to contentW
	colW := []float64{24, 56, 12, 22, 46, 26}
	headers := []string{"Part ID", "Name", "Qty", "Status", "Vendor", "Unit Price"}

	totalParts := 0
	for _, cat := range report.Categories {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, cat.Name, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range headers {
			pdf.CellFormat(colW[i], 6, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		for _, p := range cat.Items {
			totalParts++
			vendorName, vendorPrice := "", ""
			if v := p.FinalizedVendor(); v != nil {
				vendorName = v.Name
				if v.Price != nil {
					vendorPrice = v.Price.StringFixed(2)
				}
			}
			pdf.CellFormat(colW[0], 6, p.PartID, "1", 0, "L", false, 0, "")
			pdf.CellFormat(colW[1], 6, p.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(colW[2], 6, fmt.Sprintf("%d", p.Quantity), "1", 0, "R", false, 0, "")
			pdf.CellFormat(colW[3], 6, p.Status.Human(), "1", 0, "L", false, 0, "")
			pdf.CellFormat(colW[4], 6, vendorName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(colW[5], 6, vendorPrice, "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
		pdf.Ln(3)
	}

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Parts: %d", totalParts), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Material cost (finalized vendors): %s", report.MaterialCost.StringFixed(2)), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// Package export writes quotes and cutting plans to customer-facing file
// formats: PDF, Excel, and DXF.
package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/surmesure/configurator/internal/config"
	"github.com/surmesure/configurator/internal/pricing"
	"github.com/surmesure/configurator/internal/quote"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	marginLeft = 18.0
	marginTop  = 18.0
	qrSize     = 30.0

	colLabel  = 80.0
	colDetail = 40.0
	colQty    = 22.0
	rowHeight = 7.0
)

// ExportQuotePDF writes the quote as a one-or-more-page PDF: header,
// product summary, the line-item table in computation order, the totals
// block, and a QR code embedding the configuration JSON so the workshop
// can reload the exact project.
func ExportQuotePDF(path string, cfg config.Product, b pricing.Breakdown) error {
	if len(b.LineItems) == 0 {
		return fmt.Errorf("no line items to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(0, 10, "Devis — "+cfg.DisplayName(), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 6, fmt.Sprintf("Produit : %s", cfg.Family()), "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 6, "Dimensions : "+quote.DimensionsString(cfg), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Line items table.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.SetX(marginLeft)
	pdf.CellFormat(colLabel, rowHeight, "Désignation", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colDetail, rowHeight, "Détail", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, rowHeight, "Qté", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colQty, rowHeight, "Montant HT", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range b.LineItems {
		pdf.SetX(marginLeft)
		pdf.CellFormat(colLabel, rowHeight, item.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colDetail, rowHeight, item.Detail, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, rowHeight, fmt.Sprintf("%.4g %s", item.Quantity, item.Unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colQty, rowHeight, fmt.Sprintf("%.2f EUR", item.Amount), "1", 1, "R", false, 0, "")
	}

	// Totals block.
	pdf.Ln(4)
	totals := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Total HT", b.SubtotalHT, false},
		{"TVA 20 %", b.TVA, false},
		{"Total TTC", b.TotalTTC, true},
	}
	for _, t := range totals {
		style := ""
		if t.bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.SetX(marginLeft + colLabel)
		pdf.CellFormat(colDetail+colQty, rowHeight, t.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(colQty, rowHeight, fmt.Sprintf("%.2f EUR", t.value), "", 1, "R", false, 0, "")
	}

	if err := drawConfigQR(pdf, cfg); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// drawConfigQR encodes the configuration JSON into a QR code placed at
// the bottom-left of the current page.
func drawConfigQR(pdf *fpdf.Fpdf, cfg config.Product) error {
	blob, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	png, err := qrcode.Encode(string(blob), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate config QR: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	name := "config-qr"
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, marginLeft, pageHeight-qrSize-20, qrSize, qrSize, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(marginLeft, pageHeight-18)
	pdf.CellFormat(qrSize, 4, "Configuration", "", 0, "C", false, 0, "")
	return nil
}

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/surmesure/configurator/internal/pricing"
)

// ExportBreakdownXLSX writes the price breakdown as a workbook: one row
// per line item in computation order, then a totals block.
func ExportBreakdownXLSX(path string, name string, b pricing.Breakdown) error {
	if len(b.LineItems) == 0 {
		return fmt.Errorf("no line items to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := []string{"Désignation", "Détail", "Quantité", "Unité", "Montant HT (EUR)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, item := range b.LineItems {
		values := []interface{}{item.Label, item.Detail, item.Quantity, item.Unit, item.Amount}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	row++
	totals := []struct {
		label string
		value float64
	}{
		{"Total HT", b.SubtotalHT},
		{"TVA 20 %", b.TVA},
		{"Total TTC", b.TotalTTC},
	}
	for _, t := range totals {
		labelCell, err := excelize.CoordinatesToCellName(4, row)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(5, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, labelCell, t.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valueCell, t.value); err != nil {
			return err
		}
		row++
	}

	if name != "" {
		if err := f.SetSheetName(sheet, name); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

package export

import (
	"fmt"

	"github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/surmesure/configurator/internal/cutplan"
)

// panelGap separates panels horizontally in the drawing, in mm.
const panelGap = 200.0

// ExportCutPlanDXF writes the cutting plan as a DXF drawing: one outlined
// panel per stock sheet, side by side, with each board cut drawn as a
// rectangle on the cuts layer.
func ExportCutPlanDXF(path string, plan cutplan.Plan) error {
	if len(plan.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("panels", dxfcolor.White, table.LT_CONTINUOUS, true); err != nil {
		return err
	}
	if _, err := d.AddLayer("cuts", dxfcolor.Red, table.LT_CONTINUOUS, true); err != nil {
		return err
	}

	offsetX := 0.0
	for _, panel := range plan.Panels {
		if err := d.ChangeLayer("panels"); err != nil {
			return err
		}
		if err := drawRect(d, offsetX, 0, panel.Length, panel.Width); err != nil {
			return err
		}

		if err := d.ChangeLayer("cuts"); err != nil {
			return err
		}
		for _, pl := range panel.Placements {
			if err := drawRect(d, offsetX+pl.X, pl.Y, pl.PlacedLength(), pl.PlacedWidth()); err != nil {
				return err
			}
		}

		offsetX += panel.Length + panelGap
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle as four lines.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}

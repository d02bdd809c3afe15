package sink

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/wellsketch/pkg/well"
)

// Sheet names in the XLSX tally.
const (
	SheetTubulars = "Tubulars"
	SheetCement   = "Cement"
	SheetPackers  = "Packers"
)

var (
	tubularHeader = []any{"Name", "Role", "ID [in]", "OD [in]", "Top [ft]", "Bottom [ft]",
		"Thickness [in]", "Centerline [in]", "Length [ft]", "Weight [lb/ft]", "Total weight [lb]", "Shoe [in]", "Shoe width [in]", "Info"}
	cementHeader = []any{"ID", "Top [ft]", "Bottom [ft]", "Length [ft]", "Outer string", "Outer wall [in]", "Inner string", "Inner wall [in]"}
	packerHeader = []any{"#", "Kind", "Depth [ft]", "Top [ft]", "Bottom [ft]", "Inner", "Inner seal [in]", "Outer", "Outer seal [in]"}
)

// RenderXLSX writes a casing tally workbook for w. It reads the well directly
// because the plan does not carry weights or references.
func RenderXLSX(w *well.Well) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetTubulars); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetCement, SheetPackers} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	strs := w.Tubulars()
	if t, ok := w.Tubing(); ok {
		strs = append(strs, t)
	}
	rows := [][]any{tubularHeader}
	for _, t := range strs {
		var shoe, shoeWidth any
		if sw, ok := t.ShoeWidth(); ok {
			shoe, shoeWidth = t.ShoeSize, sw
		}
		rows = append(rows, []any{t.Name, t.Role.String(), t.InnerDiameter, t.OuterDiameter, t.Top, t.Bottom,
			t.Thickness(), t.Centerline(), t.Length(), t.UnitWeight, t.TotalWeight(), shoe, shoeWidth, t.Info})
	}
	if err := writeRows(f, SheetTubulars, rows); err != nil {
		return nil, err
	}

	rows = [][]any{cementHeader}
	for _, c := range w.Cements() {
		rows = append(rows, []any{c.ID, c.Top, c.Bottom, c.Length(), c.Outer, c.OuterWall, c.Inner, c.InnerWall})
	}
	if err := writeRows(f, SheetCement, rows); err != nil {
		return nil, err
	}

	rows = [][]any{packerHeader}
	for i, p := range w.Packers() {
		rows = append(rows, []any{i, string(p.Kind), p.Depth, p.Top(), p.Bottom(), p.Inner, p.InnerSeal, p.Outer, p.OuterSeal})
	}
	if err := writeRows(f, SheetPackers, rows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

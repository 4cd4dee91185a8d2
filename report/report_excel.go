package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fm-calculator/sieve"
)

// WriteXLSX writes the analysis as a spreadsheet: sample metadata block,
// a header row, one row per sieve, and the summary figures underneath.
func WriteXLSX(w io.Writer, res *sieve.Result, info SampleInfo) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	meta := [][]interface{}{
		{"Site Name", orDash(info.SiteName)},
		{"Lot/Truck No", orDash(info.LotNumber)},
		{"Supplier", orDash(info.SupplierName)},
		{"Sample ID", orDash(info.SampleName)},
		{"Sampling Date", orDash(info.SamplingDate)},
		{"Testing Date", info.testingDate()},
	}
	row := 1
	for _, m := range meta {
		if err := setRow(f, sheet, row, &m); err != nil {
			return err
		}
		row++
	}
	row++ // blank spacer row

	header := []interface{}{
		"Sieve Size", "Weight (g)", "% Retained", "Cumulative % Retained", "% Passing", "ASTM Limit",
	}
	if err := setRow(f, sheet, row, &header); err != nil {
		return err
	}
	row++

	for _, r := range res.Rows {
		cells := []interface{}{
			sieve.SizeLabel(r.Size),
			r.Retained,
			r.PercentRetained,
			r.CumulativePercent,
			r.PercentPassing,
			r.Limit.String(),
		}
		if err := setRow(f, sheet, row, &cells); err != nil {
			return err
		}
		row++
	}
	row++

	summary := [][]interface{}{
		{"Total Weight (g)", res.Summary.TotalWeight},
		{"Fineness Modulus", res.Summary.FinenessModulus},
		{"Sand Type", res.Summary.Classification},
	}
	for _, s := range summary {
		if err := setRow(f, sheet, row, &s); err != nil {
			return err
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values *[]interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing workbook row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, values); err != nil {
		return fmt.Errorf("filling workbook row %d: %w", row, err)
	}
	return nil
}

package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"fm-calculator/sieve"
)

// WritePDF renders the full test report to w: header, sample information,
// fineness modulus and classification, the per-sieve data table with ASTM
// limits, and the embedded gradation curve.
func WritePDF(w io.Writer, res *sieve.Result, info SampleInfo) error {
	chart, err := RenderChart(res)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sand Fineness Modulus Test Report", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	// Title and rule.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0x2c, 0x3e, 0x50)
	pdf.CellFormat(usable, 10, "SAND FINENESS MODULUS TEST REPORT", "", 1, "C", false, 0, "")
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Line(left, pdf.GetY(), pageWidth-right, pdf.GetY())
	pdf.Ln(4)

	writeSampleInfo(pdf, usable, info)
	writeSummary(pdf, usable, res)
	writeDataTable(pdf, left, usable, res)

	// Gradation curve, centered.
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("gradation-curve", opts, bytes.NewReader(chart))
	imgWidth := 130.0
	pdf.ImageOptions("gradation-curve", left+(usable-imgWidth)/2, pdf.GetY()+4,
		imgWidth, 0, true, opts, 0, "")
	pdf.Ln(8)

	// Footer rule and line.
	pdf.Line(left, pdf.GetY(), pageWidth-right, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0x80, 0x80, 0x80)
	pdf.CellFormat(usable, 5, "Generated by FM Calculator | Confidential Report", "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf report: %w", err)
	}
	return nil
}

func heading(pdf *fpdf.Fpdf, usable float64, text string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0x34, 0x98, 0xdb)
	pdf.CellFormat(usable, 8, text, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writeSampleInfo(pdf *fpdf.Fpdf, usable float64, info SampleInfo) {
	heading(pdf, usable, "Sample Information")

	rows := [][2]string{
		{"Site Name", info.SiteName},
		{"Lot/Truck No", info.LotNumber},
		{"Supplier", info.SupplierName},
		{"Sample ID", info.SampleName},
		{"Total Weight", weightText(info.TotalWeight)},
		{"Sampling Date", info.SamplingDate},
		{"Testing Date", info.testingDate()},
	}
	half := usable / 2
	for i := 0; i < len(rows); i += 2 {
		writeInfoPair(pdf, half, rows[i])
		if i+1 < len(rows) {
			writeInfoPair(pdf, half, rows[i+1])
		}
		pdf.Ln(5)
	}
	pdf.Ln(3)
}

func writeInfoPair(pdf *fpdf.Fpdf, width float64, row [2]string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(width*0.35, 5, row[0]+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(width*0.65, 5, orDash(row[1]), "", 0, "L", false, 0, "")
}

func weightText(w string) string {
	if w == "" {
		return ""
	}
	return w + " g"
}

func writeSummary(pdf *fpdf.Fpdf, usable float64, res *sieve.Result) {
	heading(pdf, usable, "Test Results")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(40, 5, "Fineness Modulus:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(40, 5, fmt.Sprintf("%.2f", res.Summary.FinenessModulus), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(40, 5, "Sand Type:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(40, 5, res.Summary.Classification, "", 1, "L", false, 0, "")
	pdf.Ln(3)
}

func writeDataTable(pdf *fpdf.Fpdf, left, usable float64, res *sieve.Result) {
	heading(pdf, usable, "Sieve Analysis Data")

	headers := []string{"Sieve Size", "Weight (g)", "Cumulative % Retained", "% Passing", "ASTM Limit"}
	widths := []float64{28, 28, 46, 28, 34}
	total := 0.0
	for _, w := range widths {
		total += w
	}
	indent := left + (usable-total)/2

	pdf.SetX(indent)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(0x34, 0x98, 0xdb)
	pdf.SetTextColor(0xff, 0xff, 0xff)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(0xfd, 0xfd, 0xfe)
	for i, row := range res.Rows {
		fill := i%2 == 1
		cells := []string{
			sieve.SizeLabel(row.Size),
			fmt.Sprintf("%.2f", row.Retained),
			fmt.Sprintf("%.2f", row.CumulativePercent),
			fmt.Sprintf("%.2f", row.PercentPassing),
			row.Limit.String(),
		}
		pdf.SetX(indent)
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 6, cell, "1", 0, "C", fill, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"fm-calculator/sieve"
)

func sampleResult(t *testing.T) *sieve.Result {
	t.Helper()
	readings := sieve.StandardReadings()
	for i, w := range []float64{4, 8, 28, 20, 20, 15, 5} {
		readings[i].Retained = w
	}
	res, err := sieve.Analyze(readings)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	return res
}

func sampleInfo() SampleInfo {
	return SampleInfo{
		LotNumber:    "L-042",
		SiteName:     "North Yard",
		SampleName:   "S-17",
		SupplierName: "Riverbed Aggregates",
		TotalWeight:  "100",
		SamplingDate: "12 Mar 2026",
		TestingDate:  "14 Mar 2026",
	}
}

func TestRenderChartProducesPNG(t *testing.T) {
	png, err := RenderChart(sampleResult(t))
	if err != nil {
		t.Fatalf("RenderChart returned error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("chart output is not a PNG")
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleResult(t), sampleInfo()); err != nil {
		t.Fatalf("WritePDF returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("report output is not a PDF")
	}
	if buf.Len() < 1024 {
		t.Fatalf("report suspiciously small: %d bytes", buf.Len())
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleResult(t), sampleInfo()); err != nil {
		t.Fatalf("WriteXLSX returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("workbook does not reopen: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	tests := []struct {
		cell string
		want string
	}{
		{"A1", "Site Name"},
		{"B1", "North Yard"},
		{"A8", "Sieve Size"},
		{"A9", "4.75 mm"},
		{"F9", "95-100%"},
		{"A15", "Pan"},
		{"A17", "Total Weight (g)"},
		{"B17", "100"},
		{"A19", "Sand Type"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(sheet, tt.cell)
		if err != nil {
			t.Fatalf("reading %s: %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}

	fm, err := f.GetCellValue(sheet, "B18")
	if err != nil {
		t.Fatalf("reading B18: %v", err)
	}
	if !strings.HasPrefix(fm, "2.9") {
		t.Errorf("fineness modulus cell = %q, want 2.91", fm)
	}
}

// Package report renders sieve-analysis results into deliverable artifacts:
// the gradation-curve chart, the PDF test report, and the XLSX workbook.
package report

import "time"

// SampleInfo carries the metadata printed in the report header. All fields
// are free-form text collected from the export dialog; empty fields render
// as a dash.
type SampleInfo struct {
	LotNumber    string
	SiteName     string
	SampleName   string
	SupplierName string
	TotalWeight  string // as entered by the operator, grams
	SamplingDate string
	TestingDate  string
}

// testingDate falls back to the current time when the operator left the
// field blank.
func (info SampleInfo) testingDate() string {
	if info.TestingDate != "" {
		return info.TestingDate
	}
	return time.Now().Format("02 Jan 2006; 3:04 PM")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

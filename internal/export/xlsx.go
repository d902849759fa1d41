// Package export writes the final posting list to an .xlsx spreadsheet.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"jobscout/internal/model"
)

const sheetName = "Jobs"

// header is the fixed column order. Output is deterministic: the same
// posting sequence always produces an identical file.
var header = []any{
	"Source", "Company", "Title", "City", "Country",
	"Seniority", "Salary", "Remote", "Tech Stack", "URL", "Posted",
}

// WriteXLSX writes one sheet with a header row and one row per posting.
// An unwritable destination surfaces as ErrWriteFailed.
func WriteXLSX(postings []model.JobPosting, path string) error {
	f, err := build(postings)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w: %w", path, model.ErrWriteFailed, err)
	}
	return nil
}

// XLSXBytes renders the same spreadsheet into memory, for callers that offer
// the file as a download instead of writing it themselves.
func XLSXBytes(postings []model.JobPosting) ([]byte, error) {
	f, err := build(postings)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("render spreadsheet: %w: %w", model.ErrWriteFailed, err)
	}
	return buf.Bytes(), nil
}

func build(postings []model.JobPosting) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("build spreadsheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("build spreadsheet: %w", err)
	}
	for i, p := range postings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("build spreadsheet: %w", err)
		}
		row := []any{
			string(p.Source), p.Company, p.Title, p.City, p.Country,
			p.Seniority, p.Salary, p.Remote, p.TechStack, p.URL, p.PostedAt,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("build spreadsheet: %w", err)
		}
	}
	return f, nil
}

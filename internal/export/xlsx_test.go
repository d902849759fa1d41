package export

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"jobscout/internal/model"
)

var samplePostings = []model.JobPosting{
	{
		Source:    model.SourceJustJoin,
		Company:   "Acme",
		Title:     "Data Analyst",
		City:      "Warszawa",
		Country:   "PL",
		Salary:    "12000 - 18000 pln",
		Remote:    "Yes",
		TechStack: "SQL, Python",
		URL:       "https://justjoin.it/offers/acme-data-analyst",
		PostedAt:  "2026-02-10",
	},
	{
		Source:  model.SourceGermanTech,
		Company: "Beta AG",
		Title:   "Business Analyst",
		City:    "Berlin",
		Country: "DE",
		URL:     "https://germantechjobs.de/jobs/beta-business-analyst",
	},
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs_data.xlsx")
	if err := WriteXLSX(samplePostings, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"Source", "Company", "Title", "City", "Country",
		"Seniority", "Salary", "Remote", "Tech Stack", "URL", "Posted"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Errorf("header column %d: expected %q, got %q", i, want, rows[0][i])
		}
	}

	if rows[1][0] != "JustJoin.it" || rows[1][1] != "Acme" || rows[1][2] != "Data Analyst" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[1][6] != "12000 - 18000 pln" {
		t.Errorf("unexpected salary cell: %q", rows[1][6])
	}
	if rows[2][4] != "DE" {
		t.Errorf("unexpected country cell: %q", rows[2][4])
	}
}

func TestWriteXLSX_EmptyInputStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteXLSX(nil, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
}

func TestXLSXBytes_Deterministic(t *testing.T) {
	a, err := XLSXBytes(samplePostings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := XLSXBytes(samplePostings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical input produced different bytes")
	}
}

func TestWriteXLSX_UnwritableDestination(t *testing.T) {
	err := WriteXLSX(samplePostings, filepath.Join(t.TempDir(), "no-such-dir", "jobs.xlsx"))
	if err == nil {
		t.Fatal("expected error for unwritable path, got nil")
	}
	if !errors.Is(err, model.ErrWriteFailed) {
		t.Errorf("expected ErrWriteFailed, got %v", err)
	}
}

package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestBuild(t *testing.T) {
	city := "Pune"
	var missing *string
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	data, err := Build(at, Sheet{
		Name:    "Dealers",
		Title:   "Dealers report",
		Columns: []Column{{Header: "ID"}, {Header: "Name"}, {Header: "City"}, {Header: "Phone"}, {Header: "Created"}},
		Rows: [][]interface{}{
			{uint(1), "Acme", &city, missing, at},
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Dealers" {
		t.Fatalf("sheets = %v, want [Dealers]", got)
	}

	rows, err := f.GetRows("Dealers")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("len(rows) = %d, want 5", len(rows))
	}
	if rows[0][0] != "Dealers report" {
		t.Errorf("title = %q", rows[0][0])
	}

	header := rows[3]
	if header[0] != "ID" || header[4] != "Created" {
		t.Errorf("header = %v", header)
	}

	row := rows[4]
	if row[1] != "Acme" || row[2] != "Pune" {
		t.Errorf("row = %v", row)
	}
	if row[3] != "" {
		t.Errorf("nil pointer cell = %q, want empty", row[3])
	}
	if row[4] != "2025-03-01 09:30:00" {
		t.Errorf("time cell = %q", row[4])
	}
}

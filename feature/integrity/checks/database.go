package checks

import (
	"fmt"

	"sports-catalog/core/database"

	"gorm.io/gorm"
)

// TableReport is the result of checking one table against its model.
type TableReport struct {
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "mismatch", "missing"
	Error          string   `json:"error,omitempty"`
}

// Matched reports whether the table exists with every expected column.
func (r TableReport) Matched() bool {
	return r.Status == "ok"
}

// CheckTable verifies that table exists and has the expected columns. A table that
// cannot be inspected is reported as missing rather than returned as an error.
func CheckTable(db *gorm.DB, table string, expected []string) (TableReport, error) {
	if db == nil {
		return TableReport{}, fmt.Errorf("database connection is nil")
	}

	report := TableReport{Table: table, MissingColumns: []string{}, Status: "ok"}

	missing, err := database.MissingColumns(db, table, expected)
	if err != nil {
		report.Status = "missing"
		report.Error = err.Error()
		return report, nil
	}

	if len(missing) > 0 {
		report.MissingColumns = missing
		report.Status = "mismatch"
	}
	return report, nil
}

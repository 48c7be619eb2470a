package checks

import (
	"fmt"
	"reflect"
	"strings"

	"pass-finder/core/database"
	"pass-finder/core/registry"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a registry table check.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Rows           int64    `json:"rows"`
	Errors         []string `json:"errors"`
}

// CheckSchema verifies the registry table against the Location model's gorm tags.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	model := reflect.TypeOf(registry.Location{})
	report := &SchemaReport{
		Table:          registry.Location{}.TableName(),
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Errors:         []string{},
	}

	actualCols, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", report.Table, err))
		report.Matched = false
		return report, nil
	}
	if len(actualCols) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("Table %s does not exist", report.Table))
		report.Matched = false
		return report, nil
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	for i := 0; i < model.NumField(); i++ {
		tag := model.Field(i).Tag.Get("gorm")
		colName := parseGormColumn(tag)
		if colName == "" {
			continue
		}

		col, ok := actual[colName]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, colName)
			report.Matched = false
			continue
		}

		// Only the base type is compared; lengths and signedness vary by driver.
		if expType := baseType(parseGormType(tag)); expType != "" && !strings.Contains(col.Type, expType) {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
			report.Matched = false
		}
	}

	if err := db.Model(&registry.Location{}).Count(&report.Rows).Error; err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to count rows: %v", err))
		report.Matched = false
	}

	return report, nil
}

func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}

func baseType(t string) string {
	t = strings.ToLower(t)
	if i := strings.Index(t, "("); i >= 0 {
		t = t[:i]
	}
	return t
}

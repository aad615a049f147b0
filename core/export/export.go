package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dbapi-compare/core/progress"
	"dbapi-compare/core/record"
	"dbapi-compare/core/utils"

	"github.com/xuri/excelize/v2"
)

// Config holds the export settings.
type Config struct {
	// Dir is the base directory for run exports.
	Dir string `mapstructure:"dir" default:"exports"`
	// FixDir is the directory for generated fix scripts. Empty disables
	// persistence; fixes are then only announced in the log.
	FixDir string `mapstructure:"fix_dir" default:""`
	// Excel toggles the additional XLSX workbook.
	Excel bool `mapstructure:"excel" default:"true"`
}

// Paths maps artifact names (folder, db_csv, api_csv, merged_csv, xlsx) to
// their filesystem locations.
type Paths map[string]string

// WriteRun writes the three tables of a run into a fresh run_<ts> directory
// under baseDir and returns the artifact paths. The Excel workbook is
// best-effort: on failure a status line is published and the CSVs stand.
func WriteRun(baseDir string, dbTable, apiTable, merged *record.Table, withExcel bool, q progress.Reporter) (Paths, error) {
	outDir := filepath.Join(baseDir, "run_"+time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	paths := Paths{"folder": outDir}

	sheets := []struct {
		name  string
		key   string
		table *record.Table
	}{
		{"db", "db_csv", dbTable},
		{"api", "api_csv", apiTable},
		{"merged", "merged_csv", merged},
	}

	for _, s := range sheets {
		p := filepath.Join(outDir, s.name+".csv")
		if err := writeCSV(p, s.table); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", s.name+".csv", err)
		}
		paths[s.key] = p
	}

	if withExcel {
		p := filepath.Join(outDir, "export.xlsx")
		if err := writeWorkbook(p, sheets); err != nil {
			progress.Put(q, "Excel export failed: "+err.Error())
		} else {
			paths["xlsx"] = p
		}
	}

	progress.Put(q, "Export finished: "+outDir)
	return paths, nil
}

func writeCSV(path string, table *record.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return err
	}
	line := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			line[i] = utils.ToString(row[col])
		}
		if err := w.Write(line); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeWorkbook(path string, sheets []struct {
	name  string
	key   string
	table *record.Table
}) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return err
		}
		if err := writeSheet(f, s.name, s.table); err != nil {
			return err
		}
	}
	// Drop the default sheet so the workbook holds exactly db/api/merged.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, table *record.Table) error {
	for i, col := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	for r, row := range table.Rows {
		for c, col := range table.Columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, utils.ToString(row[col])); err != nil {
				return err
			}
		}
	}

	if len(table.Columns) == 0 {
		return nil
	}

	lastCell, err := excelize.CoordinatesToCellName(len(table.Columns), table.Len()+1)
	if err != nil {
		return err
	}
	if err := f.AutoFilter(sheet, "A1:"+lastCell, nil); err != nil {
		return err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return autofit(f, sheet, table)
}

// autofit sizes columns from the header and a sample of rows, clamped to a
// readable range. Mirrors the sampling approach of the CSV-heavy exports this
// tool replaces: measuring every row of a 250k export is not worth it.
func autofit(f *excelize.File, sheet string, table *record.Table) error {
	const (
		sampleRows = 200
		minWidth   = 8.0
		maxWidth   = 60.0
	)

	for i, col := range table.Columns {
		width := clamp(float64(len(col))+2, minWidth, maxWidth)
		limit := table.Len()
		if limit > sampleRows {
			limit = sampleRows
		}
		for _, row := range table.Rows[:limit] {
			w := float64(len(utils.ToString(row[col]))) + 2
			if w > width {
				width = clamp(w, minWidth, maxWidth)
			}
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

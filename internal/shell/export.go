package shell

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// ExportAnalytics writes the analytics page as an xlsx workbook: a summary
// sheet with the headline cards and one sheet per chart.
func ExportAnalytics(a Analytics) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	set := func(sheet string, col, row int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = file.SetCellValue(sheet, cell, value)
	}

	set(summarySheet, 1, 1, "Range")
	set(summarySheet, 2, 1, string(a.Range))
	set(summarySheet, 1, 3, "Metric")
	set(summarySheet, 2, 3, "Value")
	set(summarySheet, 3, 3, "Change %")
	for i, card := range a.Cards {
		set(summarySheet, 1, 4+i, card.Title)
		set(summarySheet, 2, 4+i, card.Value)
		set(summarySheet, 3, 4+i, card.Change)
	}
	_ = file.SetColWidth(summarySheet, "A", "A", 24)
	_ = file.SetColWidth(summarySheet, "B", "C", 14)

	used := map[string]struct{}{summarySheet: {}}
	for _, chart := range a.Charts {
		sheet := sheetName(chart.Title, used)
		used[sheet] = struct{}{}
		if _, err := file.NewSheet(sheet); err != nil {
			return nil, err
		}

		set(sheet, 1, 1, "Label")
		for j, ds := range chart.Datasets {
			header := ds.Label
			if header == "" {
				header = "Value"
			}
			set(sheet, 2+j, 1, header)
		}
		for i, label := range chart.Labels {
			set(sheet, 1, 2+i, label)
			for j, ds := range chart.Datasets {
				if i < len(ds.Data) {
					set(sheet, 2+j, 2+i, ds.Data[i])
				}
			}
		}
		_ = file.SetColWidth(sheet, "A", "A", 16)
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sheetName makes title a unique, valid worksheet name
func sheetName(title string, used map[string]struct{}) string {
	replacer := strings.NewReplacer("[", "-", "]", "-", ":", "-", "*", "-", "?", "-", "/", "-", "\\", "-")
	base := strings.TrimSpace(replacer.Replace(title))
	if base == "" {
		base = "Chart"
	}
	if len(base) > 31 {
		base = base[:31]
	}

	name := base
	for n := 2; ; n++ {
		if _, taken := used[name]; !taken {
			return name
		}
		suffix := "-" + strconv.Itoa(n)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		name = trimmed + suffix
	}
}

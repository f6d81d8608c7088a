// Package report renders dashboard data as downloadable spreadsheets.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"rental-service/internal/model"
)

var monthNames = [12]string{
	"Janvier", "Fevrier", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Aout", "Septembre", "Octobre", "Novembre", "Decembre",
}

// MonthlySummaryXLSX renders the twelve-month revenue and expense rollup as
// an xlsx workbook ready to stream to the client.
func MonthlySummaryXLSX(summary model.MonthlySummary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Bilan %d", summary.Year)
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return nil, fmt.Errorf("build header style: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Mois")
	f.SetCellValue(sheet, "B1", "Recettes")
	f.SetCellValue(sheet, "C1", "Depenses")
	f.SetCellValue(sheet, "D1", "Solde")
	f.SetCellStyle(sheet, "A1", "D1", headerStyle)

	var totalRecettes, totalDepenses float64
	for month := 0; month < 12; month++ {
		row := month + 2
		recettes := summary.Recettes[month]
		depenses := summary.Depenses[month]
		totalRecettes += recettes
		totalDepenses += depenses

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), monthNames[month])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), recettes)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), depenses)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), recettes-depenses)
	}

	totalRow := 14
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), totalRecettes)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), totalDepenses)
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), totalRecettes-totalDepenses)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("D%d", totalRow), headerStyle)

	f.SetColWidth(sheet, "A", "D", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

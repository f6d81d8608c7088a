package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rental-service/internal/model"
)

func TestMonthlySummaryXLSX(t *testing.T) {
	summary := model.MonthlySummary{Year: 2025}
	summary.Recettes[0] = 1500
	summary.Depenses[0] = 400
	summary.Recettes[11] = 2000

	buf, err := MonthlySummaryXLSX(summary)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Bilan 2025"
	require.Contains(t, f.GetSheetList(), sheet)

	cell := func(ref string) string {
		value, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Mois", cell("A1"))
	assert.Equal(t, "Janvier", cell("A2"))
	assert.Equal(t, "1500", cell("B2"))
	assert.Equal(t, "400", cell("C2"))
	assert.Equal(t, "1100", cell("D2"))
	assert.Equal(t, "Decembre", cell("A13"))
	assert.Equal(t, "Total", cell("A14"))
	assert.Equal(t, "3500", cell("B14"))
	assert.Equal(t, "3100", cell("D14"))
}

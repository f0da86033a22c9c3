package extract

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ncrpintel/internal/domain"
)

type sheetFixture struct {
	name string
	rows [][]interface{}
}

func buildWorkbook(t *testing.T, sheets []sheetFixture) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}
		for j, row := range sheet.rows {
			axis, err := excelize.CoordinatesToCellName(1, j+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet.name, axis, &row))
		}
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestExcel_ParsesWorkbook(t *testing.T) {
	data := buildWorkbook(t, []sheetFixture{
		{name: "Complaints", rows: [][]interface{}{
			{"Complaint ID", "Complaint Date", "Amount Lost", "District", "State"},
			{"3209876543210", "15/04/2024", 75000, "Nagpur", "Maharashtra"},
		}},
	})

	recs, err := NewRegistry().ExtractAll(RawInput{Data: data, Kind: domain.SourceSpreadsheet})
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "3209876543210", rec.ComplaintID)
	require.NotNil(t, rec.ComplaintDate)
	assert.Equal(t, "2024-04-15", rec.ComplaintDate.Format("2006-01-02"))
	require.NotNil(t, rec.AmountLost)
	assert.Equal(t, 75000.0, *rec.AmountLost)
	assert.Equal(t, "Nagpur", rec.District)
	assert.Equal(t, domain.SourceSpreadsheet, rec.SourceFileType)
}

func TestExcel_FirstSheetOnly(t *testing.T) {
	data := buildWorkbook(t, []sheetFixture{
		{name: "Complaints", rows: [][]interface{}{
			{"Complaint ID"},
			{"NCRP-SHEET-ONE"},
		}},
		{name: "Ignored", rows: [][]interface{}{
			{"Complaint ID"},
			{"NCRP-SHEET-TWO"},
		}},
	})

	recs, err := NewRegistry().ExtractAll(RawInput{Data: data, Kind: domain.SourceSpreadsheet})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "NCRP-SHEET-ONE", recs[0].ComplaintID)
}

func TestExcel_NotAWorkbookIsUnreadable(t *testing.T) {
	_, err := NewRegistry().ExtractAll(RawInput{
		Data: []byte("Complaint_ID,Amount\nNCRP-1,100\n"), // CSV bytes, declared spreadsheet
		Kind: domain.SourceSpreadsheet,
	})
	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, domain.ExtractUnreadable, extErr.Reason)
}

package store

import (
	"strconv"
	"time"

	"ncrpintel/internal/domain"
)

// Columns defines the fixed master-table header (15 columns). Order is part
// of the store format and must not change.
var Columns = []string{
	"Complaint_ID",
	"Complaint_Date",
	"Category",
	"Sub_Category",
	"District",
	"State",
	"Amount_Lost",
	"Status",
	"Transaction_Count",
	"Data_Quality_Score",
	"Investigation_Ready",
	"Reporting_Delay_Days",
	"Reporting_Delay_Status",
	"Transaction_Pattern",
	"Source_File_Type",
}

// recordToRow serializes a scored complaint into one 15-element row.
// Unset optional fields serialize as empty strings.
func recordToRow(rec *domain.ComplaintRecord) []string {
	return []string{
		rec.ComplaintID,
		formatDate(rec.ComplaintDate),
		rec.Category,
		rec.SubCategory,
		rec.District,
		rec.State,
		formatAmount(rec.AmountLost),
		rec.Status,
		strconv.Itoa(len(rec.Transactions)),
		strconv.Itoa(rec.DataQualityScore),
		formatReady(rec.InvestigationReady),
		formatDays(rec.ReportingDelayDays),
		string(rec.ReportingDelayStatus),
		string(rec.TransactionPattern),
		string(rec.SourceFileType),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatAmount(a *float64) string {
	if a == nil {
		return ""
	}
	return strconv.FormatFloat(*a, 'f', -1, 64)
}

func formatDays(d *int) string {
	if d == nil {
		return ""
	}
	return strconv.Itoa(*d)
}

func formatReady(ready bool) string {
	if ready {
		return "YES"
	}
	return "NO"
}

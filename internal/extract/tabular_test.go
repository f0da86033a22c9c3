package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncrpintel/internal/domain"
)

func extractCSV(t *testing.T, csvData string) []domain.ComplaintRecord {
	t.Helper()
	recs, err := NewRegistry().ExtractAll(RawInput{Data: []byte(csvData), Kind: domain.SourceCSV})
	require.NoError(t, err)
	return recs
}

func TestCSV_HeaderAliases(t *testing.T) {
	csvData := "Acknowledgement Number,Date of Complaint,INCIDENT_DATE,Complaint Category,Sub-Category,District,State,Fraudulent Amount,Complaint Status\n" +
		"3201234567890,12/05/2024,05/05/2024,Online Fraud,UPI Fraud,Pune,Maharashtra,\"₹1,25,000.50\",Under Review\n"

	recs := extractCSV(t, csvData)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "3201234567890", rec.ComplaintID)
	require.NotNil(t, rec.ComplaintDate)
	assert.Equal(t, "2024-05-12", rec.ComplaintDate.Format("2006-01-02"))
	require.NotNil(t, rec.IncidentDate)
	assert.Equal(t, "2024-05-05", rec.IncidentDate.Format("2006-01-02"))
	assert.Equal(t, "Online Fraud", rec.Category)
	assert.Equal(t, "UPI Fraud", rec.SubCategory)
	assert.Equal(t, "Pune", rec.District)
	assert.Equal(t, "Maharashtra", rec.State)
	require.NotNil(t, rec.AmountLost)
	assert.Equal(t, 125000.50, *rec.AmountLost)
	assert.Equal(t, "Under Review", rec.Status)
	assert.Equal(t, domain.SourceCSV, rec.SourceFileType)
}

func TestCSV_OneRowPerRecord(t *testing.T) {
	csvData := "Complaint_ID,Amount_Lost\nNCRP-001,5000\nNCRP-002,7000\n\n"
	recs := extractCSV(t, csvData)
	require.Len(t, recs, 2)
	assert.Equal(t, "NCRP-001", recs[0].ComplaintID)
	assert.Equal(t, "NCRP-002", recs[1].ComplaintID)
}

func TestCSV_PositionalTransactionColumns(t *testing.T) {
	csvData := "Complaint ID,Txn_1_ID,Txn_1_Amount,Txn_2_ID,Txn_2_Amount,Bank\n" +
		"NCRP-100,UTR11111111,9500,UTR22222222,4000,PhonePe\n"

	recs := extractCSV(t, csvData)
	require.Len(t, recs, 1)
	txns := recs[0].Transactions
	require.Len(t, txns, 2)

	assert.Equal(t, "UTR11111111", txns[0].TransactionID)
	require.NotNil(t, txns[0].Amount)
	assert.Equal(t, 9500.0, *txns[0].Amount)
	assert.Equal(t, "UTR22222222", txns[1].TransactionID)
	require.NotNil(t, txns[1].Amount)
	assert.Equal(t, 4000.0, *txns[1].Amount)

	// Complaint-level bank applies to transactions without their own.
	assert.Equal(t, "PhonePe", txns[0].BankOrPlatform)
	assert.Equal(t, "PhonePe", txns[1].BankOrPlatform)
}

func TestCSV_PackedTransactionIDs(t *testing.T) {
	csvData := "Complaint_ID,Transaction IDs\nNCRP-200,\"UTR11111111; UTR22222222|short\"\n"
	recs := extractCSV(t, csvData)
	require.Len(t, recs, 1)
	txns := recs[0].Transactions
	require.Len(t, txns, 2, "fragments below the minimum length are dropped")
	assert.Equal(t, "UTR11111111", txns[0].TransactionID)
	assert.Equal(t, "UTR22222222", txns[1].TransactionID)
}

func TestCSV_MissingComplaintIDIsNotAnError(t *testing.T) {
	csvData := "Complaint_ID,District,State\n,Pune,Maharashtra\n"
	recs := extractCSV(t, csvData)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].ComplaintID)
	assert.Equal(t, "Pune", recs[0].District)
}

func TestCSV_MissingFieldsStayUnset(t *testing.T) {
	csvData := "Complaint_ID,Amount_Lost,Complaint_Date\nNCRP-300,,\n"
	recs := extractCSV(t, csvData)
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].AmountLost)
	assert.Nil(t, recs[0].ComplaintDate)
}

func TestCSV_UnrecognizedHeaderIsUnreadable(t *testing.T) {
	csvData := "foo,bar\n1,2\n"
	_, err := NewRegistry().ExtractAll(RawInput{Data: []byte(csvData), Kind: domain.SourceCSV})
	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, domain.ExtractUnreadable, extErr.Reason)
}

func TestCSV_HeaderOnlyIsUnreadable(t *testing.T) {
	_, err := NewRegistry().ExtractAll(RawInput{Data: []byte("Complaint_ID\n"), Kind: domain.SourceCSV})
	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, domain.ExtractUnreadable, extErr.Reason)
}

func TestCSV_DuplicateAliasColumnsKeepHeaderOrder(t *testing.T) {
	// Two columns alias transaction_ids and two alias amount_lost. Extraction
	// must follow header order every time: transactions left to right, and the
	// rightmost non-empty amount column winning.
	csvData := "Complaint_ID,Transaction ID,UTR,Amount,Total Amount\n" +
		"NCRP-500,AAAAAAAA,BBBBBBBB,100,200\n"

	for i := 0; i < 20; i++ {
		recs := extractCSV(t, csvData)
		require.Len(t, recs, 1)

		txns := recs[0].Transactions
		require.Len(t, txns, 2)
		assert.Equal(t, "AAAAAAAA", txns[0].TransactionID)
		assert.Equal(t, "BBBBBBBB", txns[1].TransactionID)

		require.NotNil(t, recs[0].AmountLost)
		assert.Equal(t, 200.0, *recs[0].AmountLost)
	}
}

func TestCSV_Deterministic(t *testing.T) {
	csvData := "Complaint ID,Complaint Date,Amount,Txn_1_ID,Txn_1_Amount\n" +
		"NCRP-400,01/02/2024,60000,UTR33333333,60000\n"

	first := extractCSV(t, csvData)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, extractCSV(t, csvData))
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := NewRegistry().Extract(RawInput{Data: []byte("x"), Kind: domain.SourceFileType("DOCX")})
	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, domain.ExtractUnsupportedFormat, extErr.Reason)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "complaint id", normalizeHeader(" Complaint_ID "))
	assert.Equal(t, "complaint id", normalizeHeader("COMPLAINT-ID"))
	assert.Equal(t, "complaint id", normalizeHeader("complaint   id"))
}

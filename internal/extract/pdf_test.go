package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncrpintel/internal/domain"
)

const ackLayoutText = `National Cybercrime Reporting Portal
Acknowledgement Number :
3204251234567
Category of Complaint
Online Financial Fraud
Sub Category of Complaint
UPI Related Frauds
Complaint Date
12/05/2024
Incident Date/Time
02/05/2024
Complainant Details
District
Pune
State
Maharashtra
Suspect Details
Total Fraudulent Amount reported by complainant : 1,25,000
Transaction ID : UTR1234567890
Amount : 75,000
Bank : HDFC
UTR Number : UTR9876543210
Amount : 50,000
Paytm wallet transfer
Status : Under Process
`

func TestApplyLayouts_AcknowledgementLayout(t *testing.T) {
	rec, matched := applyLayouts(normalizePDFText(ackLayoutText))
	require.True(t, matched)

	assert.Equal(t, "3204251234567", rec.ComplaintID)
	assert.Equal(t, "Online Financial Fraud", rec.Category)
	assert.Equal(t, "UPI Related Frauds", rec.SubCategory)
	assert.Equal(t, "Pune", rec.District)
	assert.Equal(t, "Maharashtra", rec.State)
	assert.Equal(t, "Under Process", rec.Status)
	require.NotNil(t, rec.ComplaintDate)
	assert.Equal(t, "2024-05-12", rec.ComplaintDate.Format("2006-01-02"))
	require.NotNil(t, rec.IncidentDate)
	assert.Equal(t, "2024-05-02", rec.IncidentDate.Format("2006-01-02"))
	require.NotNil(t, rec.AmountLost)
	assert.Equal(t, 125000.0, *rec.AmountLost)
}

func TestApplyLayouts_InlineLayout(t *testing.T) {
	text := normalizePDFText(`Complaint No: NCRP/2024/00123
Category: Identity Theft
District: Jaipur
State: Rajasthan
Incident Date: 2024-03-01
Complaint Date: 10-Mar-2024
Amount Lost: Rs. 42,500
`)
	rec, matched := applyLayouts(text)
	require.True(t, matched)

	assert.Equal(t, "NCRP/2024/00123", rec.ComplaintID)
	assert.Equal(t, "Identity Theft", rec.Category)
	assert.Equal(t, "Jaipur", rec.District)
	require.NotNil(t, rec.ComplaintDate)
	assert.Equal(t, "2024-03-10", rec.ComplaintDate.Format("2006-01-02"))
	require.NotNil(t, rec.IncidentDate)
	assert.Equal(t, "2024-03-01", rec.IncidentDate.Format("2006-01-02"))
	require.NotNil(t, rec.AmountLost)
	assert.Equal(t, 42500.0, *rec.AmountLost)
}

func TestApplyLayouts_NoRuleMatches(t *testing.T) {
	_, matched := applyLayouts("lorem ipsum dolor sit amet consectetur adipiscing elit")
	assert.False(t, matched)
}

func TestApplyLayouts_MissingIDStillExtracts(t *testing.T) {
	text := normalizePDFText(`Complainant Details
District
Kochi
State
Kerala
`)
	rec, matched := applyLayouts(text)
	require.True(t, matched)
	assert.Empty(t, rec.ComplaintID)
	assert.Equal(t, "Kochi", rec.District)
	assert.Equal(t, "Kerala", rec.State)
}

func TestCollectTransactions_DocumentOrder(t *testing.T) {
	txns := collectTransactions(normalizePDFText(ackLayoutText))
	require.Len(t, txns, 2)

	assert.Equal(t, "UTR1234567890", txns[0].TransactionID)
	require.NotNil(t, txns[0].Amount)
	assert.Equal(t, 75000.0, *txns[0].Amount)
	assert.Equal(t, "HDFC", txns[0].BankOrPlatform)

	assert.Equal(t, "UTR9876543210", txns[1].TransactionID)
	require.NotNil(t, txns[1].Amount)
	assert.Equal(t, 50000.0, *txns[1].Amount)
	assert.Equal(t, "Paytm", txns[1].BankOrPlatform)
}

func TestCollectTransactions_DuplicateReferencesCollapse(t *testing.T) {
	txns := collectTransactions("Transaction ID : UTR1111122222\nTransaction ID : UTR1111122222\n")
	assert.Len(t, txns, 1)
}

func TestPDF_GarbageIsUnreadable(t *testing.T) {
	_, err := NewRegistry().ExtractAll(RawInput{
		Data: []byte("this is definitely not a pdf payload, just plain text bytes"),
		Kind: domain.SourcePDF,
	})
	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, domain.ExtractUnreadable, extErr.Reason)
}

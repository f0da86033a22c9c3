package extract

import "regexp"

// layout is one known document template: an ordered set of field-extraction
// patterns. Layouts are evaluated in the order of pdfLayouts; the first whose
// complaint-id rules match wins. Adding a template is a data change here, not
// new control flow.
type layout struct {
	name  string
	rules map[string][]*regexp.Regexp // canonical field -> patterns, in priority order
}

// pdfLayouts, in priority order.
var pdfLayouts = []layout{
	{
		// NCRP acknowledgement PDFs: labels with the value on the same or the
		// following line, acknowledgement numbers strictly numeric.
		name: "ncrp-acknowledgement",
		rules: map[string][]*regexp.Regexp{
			colComplaintID: {
				regexp.MustCompile(`(?i)Acknowledgement\s*Number\s*:?\s*\n?\s*(\d{10,})`),
				regexp.MustCompile(`(?i)Complaint\s*ID\s*:?\s*\n?\s*(\d{10,})`),
			},
			colCategory: {
				regexp.MustCompile(`(?i)Category\s+of\s+Complaint\s*:?\s*\n?\s*([A-Za-z][A-Za-z ]*)`),
			},
			colSubCategory: {
				regexp.MustCompile(`(?i)Sub\s*Category\s+of\s+Complaint\s*:?\s*\n?\s*([A-Za-z][A-Za-z ]*)`),
			},
			colComplaintDate: {
				regexp.MustCompile(`(?i)Complaint\s+Date\s*:?\s*\n?\s*(\d{2}/\d{2}/\d{4})`),
			},
			colIncidentDate: {
				regexp.MustCompile(`(?i)Incident\s+Date(?:\s*/\s*Time)?\s*:?\s*\n?\s*(\d{2}/\d{2}/\d{4})`),
			},
			colAmountLost: {
				regexp.MustCompile(`(?i)Total\s+Fraudulent\s+Amount[^:\n]*:\s*\n?\s*(?:₹|Rs\.?|INR)?\s*([\d,]+(?:\.\d+)?)`),
			},
			colDistrict: {
				regexp.MustCompile(`(?i)District\s*:?\s*\n?\s*([A-Za-z][A-Za-z ]*)`),
			},
			colState: {
				regexp.MustCompile(`(?i)State\s*:?\s*\n?\s*([A-Za-z][A-Za-z ]*)`),
			},
			colStatus: {
				regexp.MustCompile(`(?i)Status\s*:\s*\n?\s*([A-Za-z][A-Za-z ]*)`),
			},
		},
	},
	{
		// Older portal printouts: "Label: value" on one line, alphanumeric
		// complaint numbers.
		name: "ncrp-inline",
		rules: map[string][]*regexp.Regexp{
			colComplaintID: {
				regexp.MustCompile(`(?i)Complaint\s*(?:No\.?|Number|ID)\s*:\s*([A-Z0-9][A-Z0-9/-]{5,})`),
			},
			colCategory: {
				regexp.MustCompile(`(?i)Category\s*:\s*([A-Za-z][A-Za-z ]*)`),
			},
			colSubCategory: {
				regexp.MustCompile(`(?i)Sub\s*-?\s*Category\s*:\s*([A-Za-z][A-Za-z ]*)`),
			},
			colComplaintDate: {
				regexp.MustCompile(`(?i)(?:Complaint|Filed)\s*Date\s*:\s*([0-9]{1,4}[-/][A-Za-z0-9]{2,3}[-/][0-9]{2,4})`),
			},
			colIncidentDate: {
				regexp.MustCompile(`(?i)Incident\s*Date\s*:\s*([0-9]{1,4}[-/][A-Za-z0-9]{2,3}[-/][0-9]{2,4})`),
			},
			colAmountLost: {
				regexp.MustCompile(`(?i)Amount\s*Lost\s*:\s*(?:₹|Rs\.?|INR)?\s*([\d,]+(?:\.\d+)?)`),
			},
			colDistrict: {
				regexp.MustCompile(`(?i)District\s*:\s*([A-Za-z][A-Za-z ]*)`),
			},
			colState: {
				regexp.MustCompile(`(?i)State\s*:\s*([A-Za-z][A-Za-z ]*)`),
			},
			colStatus: {
				regexp.MustCompile(`(?i)Status\s*:\s*([A-Za-z][A-Za-z ]*)`),
			},
		},
	},
}

// Transaction block sub-patterns, shared across layouts. Blocks are located
// by repeated reference labels and collected in document order.
var (
	txnRefRe = regexp.MustCompile(`(?i)(?:UTR\s*(?:Number|No\.?)?|Transaction\s*(?:ID|Reference)|Reference\s*No\.?)\s*:?\s*\n?\s*([A-Za-z0-9]{8,})`)
	txnAmtRe = regexp.MustCompile(`(?i)Amount\s*:\s*\n?\s*(?:₹|Rs\.?|INR)?\s*([\d,]+(?:\.\d+)?)`)
)

// knownPlatforms are bank and payment-platform names recognized in free text.
var knownPlatforms = []string{
	"SBI", "HDFC", "ICICI", "Axis", "Kotak", "PNB", "Canara",
	"Bank of India", "State Bank", "Punjab National Bank",
	"Paytm", "PhonePe", "Google Pay", "GPay",
	"UPI", "NEFT", "RTGS", "IMPS",
}

// stopLabels terminate a captured free-text value that ran into the next
// label on the same line.
var stopLabelRe = regexp.MustCompile(`\b(?:District|State|Category|Sub|Complaint|Incident|Amount|Total|Status|Date)\b`)

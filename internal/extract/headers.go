package extract

import (
	"regexp"
	"strings"
)

// Canonical tabular fields. Header variants from known NCRP exports are
// mapped onto these via headerAliases.
const (
	colComplaintID    = "complaint_id"
	colComplaintDate  = "complaint_date"
	colIncidentDate   = "incident_date"
	colCategory       = "category"
	colSubCategory    = "sub_category"
	colDistrict       = "district"
	colState          = "state"
	colAmountLost     = "amount_lost"
	colStatus         = "status"
	colTransactionIDs = "transaction_ids"
	colBankPlatform   = "bank_or_platform"
)

// headerAliases maps normalized header names to canonical fields. Keys are
// lowercase with single spaces (see normalizeHeader).
var headerAliases = map[string]string{
	"complaint id":           colComplaintID,
	"complaint no":           colComplaintID,
	"complaint number":       colComplaintID,
	"acknowledgement number": colComplaintID,
	"ack number":             colComplaintID,

	"complaint date":    colComplaintDate,
	"date of complaint": colComplaintDate,
	"filed date":        colComplaintDate,

	"incident date":    colIncidentDate,
	"date of incident": colIncidentDate,
	"occurred date":    colIncidentDate,

	"category":           colCategory,
	"complaint category": colCategory,

	"sub category": colSubCategory,
	"subcategory":  colSubCategory,

	"district": colDistrict,
	"state":    colState,

	"amount":            colAmountLost,
	"amount lost":       colAmountLost,
	"fraudulent amount": colAmountLost,
	"total amount":      colAmountLost,

	"status":           colStatus,
	"complaint status": colStatus,

	"transaction id":  colTransactionIDs,
	"transaction ids": colTransactionIDs,
	"transaction":     colTransactionIDs,
	"utr":             colTransactionIDs,

	"bank":          colBankPlatform,
	"platform":      colBankPlatform,
	"bank platform": colBankPlatform,
}

var headerSeparators = strings.NewReplacer("_", " ", "-", " ", ".", " ")
var spaceRe = regexp.MustCompile(`\s+`)

// normalizeHeader lowercases a header cell and collapses underscores, dashes
// and runs of whitespace, so "Complaint_ID", "complaint id" and
// "COMPLAINT-ID" all compare equal.
func normalizeHeader(h string) string {
	h = headerSeparators.Replace(strings.TrimSpace(h))
	h = spaceRe.ReplaceAllString(h, " ")
	return strings.ToLower(strings.TrimSpace(h))
}

// txnColumnRe matches positional transaction headers such as "Txn_1_Amount",
// "transaction 2 id" or "txn3 amount" after normalization.
var txnColumnRe = regexp.MustCompile(`^(?:txn|transaction)\s*(\d+)\s*(amount|id)$`)

// columnMap is the resolved meaning of one header row. Both slices keep
// header order so extraction is deterministic even when several columns alias
// the same canonical field.
type columnMap struct {
	fields []fieldColumn // canonical field columns, in header order
	txns   []txnColumn   // positional transaction columns, in header order
}

type fieldColumn struct {
	index int    // column index in the row
	field string // canonical field name
}

type txnColumn struct {
	index int    // column index in the row
	ord   int    // transaction ordinal from the header (1-based)
	kind  string // "amount" or "id"
}

// resolveHeader maps a header row onto canonical fields and positional
// transaction columns. Unrecognized columns are ignored. A header mapping
// nothing at all means the input is not a complaint export.
func resolveHeader(header []string) (columnMap, bool) {
	var cm columnMap
	for i, h := range header {
		norm := normalizeHeader(h)
		if field, ok := headerAliases[norm]; ok {
			cm.fields = append(cm.fields, fieldColumn{index: i, field: field})
			continue
		}
		if m := txnColumnRe.FindStringSubmatch(norm); m != nil {
			ord := 0
			for _, c := range m[1] {
				ord = ord*10 + int(c-'0')
			}
			cm.txns = append(cm.txns, txnColumn{index: i, ord: ord, kind: m[2]})
		}
	}
	return cm, len(cm.fields) > 0 || len(cm.txns) > 0
}

package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"ncrpintel/internal/domain"
)

// Transaction references shorter than this are treated as noise, matching the
// NCRP export convention (UTR numbers are 12+ characters).
const minTxnIDLen = 8

// CSVStrategy extracts complaint records from NCRP CSV exports. The first
// row must be a header; each following row yields one record.
type CSVStrategy struct{}

func (s *CSVStrategy) Kind() domain.SourceFileType { return domain.SourceCSV }

func (s *CSVStrategy) ExtractAll(data []byte) ([]domain.ComplaintRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // tolerate ragged rows
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewExtractionError(domain.ExtractUnreadable,
				fmt.Errorf("malformed CSV: %w", err))
		}
		rows = append(rows, row)
	}
	return recordsFromRows(rows)
}

// recordsFromRows applies the header mapping to tabular data from either the
// CSV or the spreadsheet strategy.
func recordsFromRows(rows [][]string) ([]domain.ComplaintRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cm, ok := resolveHeader(rows[0])
	if !ok {
		return nil, domain.NewExtractionError(domain.ExtractUnreadable,
			fmt.Errorf("header row matches no known complaint columns"))
	}

	var recs []domain.ComplaintRecord
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		recs = append(recs, recordFromRow(cm, row))
	}
	return recs, nil
}

func recordFromRow(cm columnMap, row []string) domain.ComplaintRecord {
	var rec domain.ComplaintRecord
	bank := ""

	for _, fc := range cm.fields {
		if fc.index >= len(row) {
			continue
		}
		val := cleanCell(row[fc.index])
		if val == "" {
			continue
		}
		switch fc.field {
		case colComplaintID:
			rec.ComplaintID = val
		case colComplaintDate:
			rec.ComplaintDate = parseDate(val)
		case colIncidentDate:
			rec.IncidentDate = parseDate(val)
		case colCategory:
			rec.Category = val
		case colSubCategory:
			rec.SubCategory = val
		case colDistrict:
			rec.District = val
		case colState:
			rec.State = val
		case colAmountLost:
			rec.AmountLost = parseAmount(val)
		case colStatus:
			rec.Status = val
		case colTransactionIDs:
			for _, id := range splitTransactionIDs(val) {
				rec.Transactions = append(rec.Transactions,
					domain.TransactionRecord{TransactionID: id})
			}
		case colBankPlatform:
			bank = val
		}
	}

	rec.Transactions = append(rec.Transactions, positionalTransactions(cm, row)...)

	// A complaint-level bank/platform cell applies to every transaction that
	// did not carry its own.
	if bank != "" {
		for i := range rec.Transactions {
			if rec.Transactions[i].BankOrPlatform == "" {
				rec.Transactions[i].BankOrPlatform = bank
			}
		}
	}
	return rec
}

// positionalTransactions collects Txn_N_Amount / Txn_N_ID column groups into
// ordered transaction records.
func positionalTransactions(cm columnMap, row []string) []domain.TransactionRecord {
	if len(cm.txns) == 0 {
		return nil
	}
	byOrd := make(map[int]*domain.TransactionRecord)
	var ords []int
	for _, tc := range cm.txns {
		if tc.index >= len(row) {
			continue
		}
		val := cleanCell(row[tc.index])
		if val == "" {
			continue
		}
		txn, ok := byOrd[tc.ord]
		if !ok {
			txn = &domain.TransactionRecord{}
			byOrd[tc.ord] = txn
			ords = append(ords, tc.ord)
		}
		switch tc.kind {
		case "amount":
			txn.Amount = parseAmount(val)
		case "id":
			txn.TransactionID = val
		}
	}
	sort.Ints(ords)
	out := make([]domain.TransactionRecord, 0, len(ords))
	for _, ord := range ords {
		out = append(out, *byOrd[ord])
	}
	return out
}

var txnIDSplitRe = regexp.MustCompile(`[,;|\n]+`)

// splitTransactionIDs splits a delimiter-packed transaction cell into
// individual references, dropping fragments too short to be real.
func splitTransactionIDs(val string) []string {
	var ids []string
	for _, part := range txnIDSplitRe.Split(val, -1) {
		part = strings.TrimSpace(part)
		if len(part) >= minTxnIDLen {
			ids = append(ids, part)
		}
	}
	return ids
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

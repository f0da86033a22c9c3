// Package intel computes the derived intelligence fields of a complaint
// record: data quality score, investigation readiness, reporting delay, and
// transaction pattern. All computations are deterministic rule evaluation
// over already-extracted fields; nothing here reads the source document.
package intel

import "ncrpintel/internal/domain"

const (
	// Per-check weight of the data quality score (five checks, 0-100 total).
	qualityCheckPoints = 20

	// Reporting delays above this many days are DELAYED; the boundary itself
	// is ON_TIME.
	onTimeDelayDays = 7

	// Single-transaction complaints above this amount are SINGLE_LARGE.
	singleLargeThreshold = 50000

	// Multi-transaction complaints where every amount is below this are
	// MULTIPLE_SMALL.
	multipleSmallThreshold = 10000
)

// Score returns a copy of rec with all derived fields recomputed from its
// current field values. It is pure and total: every input produces a value,
// defaulting conservatively when fields are missing.
func Score(rec domain.ComplaintRecord) domain.ComplaintRecord {
	rec.DataQualityScore = qualityScore(&rec)
	rec.InvestigationReady = investigationReady(&rec)
	rec.ReportingDelayDays, rec.ReportingDelayStatus = reportingDelay(&rec)
	rec.TransactionPattern = transactionPattern(&rec)
	return rec
}

// qualityScore awards 20 points for each of five independent checks.
// Amount counts as present even when zero; only a nil pointer is absent.
func qualityScore(rec *domain.ComplaintRecord) int {
	score := 0
	if rec.DedupKey() != "" {
		score += qualityCheckPoints
	}
	if rec.ComplaintDate != nil {
		score += qualityCheckPoints
	}
	if rec.AmountLost != nil {
		score += qualityCheckPoints
	}
	if rec.District != "" && rec.State != "" {
		score += qualityCheckPoints
	}
	if len(rec.Transactions) > 0 {
		score += qualityCheckPoints
	}
	return score
}

// investigationReady reports whether the minimum evidentiary fields exist:
// a positive loss amount, at least one transaction reference, and at least
// one bank or platform name.
func investigationReady(rec *domain.ComplaintRecord) bool {
	if rec.AmountLost == nil || *rec.AmountLost <= 0 {
		return false
	}
	hasTxnID := false
	hasBank := false
	for i := range rec.Transactions {
		if rec.Transactions[i].TransactionID != "" {
			hasTxnID = true
		}
		if rec.Transactions[i].BankOrPlatform != "" {
			hasBank = true
		}
	}
	return hasTxnID && hasBank
}

// reportingDelay computes complaint_date minus incident_date in whole days.
// Both dates are required; otherwise the day count stays unset and the status
// is UNKNOWN. A negative delay is preserved and classified ON_TIME.
func reportingDelay(rec *domain.ComplaintRecord) (*int, domain.DelayStatus) {
	if rec.ComplaintDate == nil || rec.IncidentDate == nil {
		return nil, domain.DelayStatusUnknown
	}
	days := int(rec.ComplaintDate.Sub(*rec.IncidentDate).Hours() / 24)
	status := domain.DelayStatusOnTime
	if days > onTimeDelayDays {
		status = domain.DelayStatusDelayed
	}
	return &days, status
}

func transactionPattern(rec *domain.ComplaintRecord) domain.TransactionPattern {
	txns := rec.Transactions
	switch {
	case len(txns) == 0:
		return domain.PatternNone
	case len(txns) == 1:
		if a := txns[0].Amount; a != nil && *a > singleLargeThreshold {
			return domain.PatternSingleLarge
		}
		return domain.PatternMixed
	default:
		// MULTIPLE_SMALL requires every amount to be known and small; an
		// unset amount cannot confirm "each below threshold".
		for i := range txns {
			if txns[i].Amount == nil || *txns[i].Amount >= multipleSmallThreshold {
				return domain.PatternMixed
			}
		}
		return domain.PatternMultipleSmall
	}
}

package domain

import (
	"strings"
	"time"
)

// TransactionRecord is one money-movement entry attached to a complaint.
type TransactionRecord struct {
	TransactionID  string   `json:"transaction_id,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	BankOrPlatform string   `json:"bank_or_platform,omitempty"`
}

// ComplaintRecord is one cybercrime report with its derived intelligence
// fields. Optional scalars are pointers so that "absent" stays distinct from
// "present but zero"; optional strings use "" for absent.
type ComplaintRecord struct {
	ComplaintID   string     `json:"complaint_id"`
	ComplaintDate *time.Time `json:"complaint_date,omitempty"`
	IncidentDate  *time.Time `json:"incident_date,omitempty"`
	Category      string     `json:"category,omitempty"`
	SubCategory   string     `json:"sub_category,omitempty"`
	District      string     `json:"district,omitempty"`
	State         string     `json:"state,omitempty"`
	AmountLost    *float64   `json:"amount_lost,omitempty"`
	Status        string     `json:"status,omitempty"`

	// Transactions in extraction order.
	Transactions []TransactionRecord `json:"transactions,omitempty"`

	SourceFileType SourceFileType `json:"source_file_type"`

	// Derived fields, populated only by the scorer.
	DataQualityScore     int                `json:"data_quality_score"`
	InvestigationReady   bool               `json:"investigation_ready"`
	ReportingDelayDays   *int               `json:"reporting_delay_days,omitempty"`
	ReportingDelayStatus DelayStatus        `json:"reporting_delay_status"`
	TransactionPattern   TransactionPattern `json:"transaction_pattern"`
}

// DedupKey returns the normalized identity used for deduplication: the
// complaint ID trimmed of surrounding whitespace and case-folded. Empty means
// the record has no stable identity.
func (r *ComplaintRecord) DedupKey() string {
	return strings.ToLower(strings.TrimSpace(r.ComplaintID))
}

// PipelineResult is the terminal outcome of one record through the pipeline.
type PipelineResult struct {
	Status ResultStatus     `json:"status"`
	Record *ComplaintRecord `json:"record,omitempty"`
	Err    error            `json:"-"`
}

// BatchResult tallies outcomes for a multi-record input such as a CSV export.
type BatchResult struct {
	Accepted  int              `json:"accepted"`
	Duplicate int              `json:"duplicate"`
	Rejected  int              `json:"rejected"`
	Results   []PipelineResult `json:"-"`
}

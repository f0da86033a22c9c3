// Package extract turns raw complaint files (PDF, CSV, Excel) into
// structured ComplaintRecords using layout-tolerant, rule-based extraction.
// Strategies never populate derived fields; that is the scorer's job.
package extract

import (
	"ncrpintel/internal/domain"
)

// RawInput is an opaque payload plus its declared format. The payload is not
// retained past extraction.
type RawInput struct {
	Data []byte
	Kind domain.SourceFileType
}

// Strategy extracts every complaint record from one input format.
type Strategy interface {
	Kind() domain.SourceFileType
	ExtractAll(data []byte) ([]domain.ComplaintRecord, error)
}

// Registry maps declared source types to extraction strategies.
type Registry struct {
	strategies map[domain.SourceFileType]Strategy
}

// NewRegistry creates a Registry with the default strategies registered.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[domain.SourceFileType]Strategy)}
	r.Register(&CSVStrategy{})
	r.Register(&ExcelStrategy{})
	r.Register(&PDFStrategy{})
	return r
}

// Register adds a strategy to the registry.
func (r *Registry) Register(s Strategy) {
	r.strategies[s.Kind()] = s
}

// ExtractAll returns every record extractable from raw, in source order.
// Inputs with zero extractable records are unreadable.
func (r *Registry) ExtractAll(raw RawInput) ([]domain.ComplaintRecord, error) {
	s, ok := r.strategies[raw.Kind]
	if !ok {
		return nil, domain.NewExtractionError(domain.ExtractUnsupportedFormat, nil)
	}
	recs, err := s.ExtractAll(raw.Data)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, domain.NewExtractionError(domain.ExtractUnreadable, domain.ErrEmptyFile)
	}
	for i := range recs {
		recs[i].SourceFileType = raw.Kind
	}
	return recs, nil
}

// Extract is the single-record contract: the first record of the input.
func (r *Registry) Extract(raw RawInput) (domain.ComplaintRecord, error) {
	recs, err := r.ExtractAll(raw)
	if err != nil {
		return domain.ComplaintRecord{}, err
	}
	return recs[0], nil
}

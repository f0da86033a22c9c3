// Package pipeline sequences extraction, scoring, and dedup/append for one
// uploaded complaint file and assigns each record its terminal status.
package pipeline

import (
	"errors"

	"ncrpintel/internal/domain"
	"ncrpintel/internal/extract"
	"ncrpintel/internal/intel"
	"ncrpintel/internal/store"
)

// Pipeline runs raw complaint inputs through extract → score → upsert.
// Extraction and scoring are stateless; the store serializes its own
// check-and-append, so one Pipeline may be shared across goroutines.
type Pipeline struct {
	extractor *extract.Registry
	master    *store.Master
}

// New creates a Pipeline writing accepted records to master.
func New(extractor *extract.Registry, master *store.Master) *Pipeline {
	return &Pipeline{extractor: extractor, master: master}
}

// Process runs a single-record input end to end. Extraction failure
// short-circuits with a rejection; nothing is written on any failure path.
// For multi-record inputs the first record is processed (see ProcessBatch).
func (p *Pipeline) Process(raw extract.RawInput) domain.PipelineResult {
	rec, err := p.extractor.Extract(raw)
	if err != nil {
		return domain.PipelineResult{Status: domain.StatusRejected, Err: err}
	}
	return p.finish(rec)
}

// ProcessBatch runs every record of a multi-record input (a CSV or
// spreadsheet export) through scoring and dedup, tallying outcomes. A failed
// extraction rejects the whole input; per-record rejections only affect that
// record.
func (p *Pipeline) ProcessBatch(raw extract.RawInput) (domain.BatchResult, error) {
	recs, err := p.extractor.ExtractAll(raw)
	if err != nil {
		return domain.BatchResult{}, err
	}

	var batch domain.BatchResult
	for i := range recs {
		res := p.finish(recs[i])
		batch.Results = append(batch.Results, res)
		switch res.Status {
		case domain.StatusAccepted:
			batch.Accepted++
		case domain.StatusDuplicate:
			batch.Duplicate++
		case domain.StatusRejected:
			batch.Rejected++
		}
	}
	return batch, nil
}

// finish scores an extracted record and hands it to the store. Scoring is
// total and never fails.
func (p *Pipeline) finish(rec domain.ComplaintRecord) domain.PipelineResult {
	rec = intel.Score(rec)

	status, err := p.master.Upsert(&rec)
	if err != nil {
		if errors.Is(err, domain.ErrMissingComplaintID) {
			return domain.PipelineResult{Status: domain.StatusRejected, Record: &rec, Err: err}
		}
		return domain.PipelineResult{Status: domain.StatusRejected, Err: err}
	}
	return domain.PipelineResult{Status: status, Record: &rec}
}

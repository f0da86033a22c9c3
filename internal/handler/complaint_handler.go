package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ncrpintel/internal/domain"
	"ncrpintel/internal/export"
	"ncrpintel/internal/extract"
	"ncrpintel/internal/pipeline"
	"ncrpintel/internal/store"
)

// ComplaintHandler exposes the ingestion pipeline and the master table.
type ComplaintHandler struct {
	pipe     *pipeline.Pipeline
	master   *store.Master
	maxBytes int64
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(pipe *pipeline.Pipeline, master *store.Master, maxBytes int64) *ComplaintHandler {
	return &ComplaintHandler{pipe: pipe, master: master, maxBytes: maxBytes}
}

// recordResult is the per-complaint outcome reported back to the uploader.
type recordResult struct {
	ComplaintID        string `json:"complaint_id,omitempty"`
	Status             string `json:"status"`
	DataQualityScore   int    `json:"data_quality_score"`
	InvestigationReady bool   `json:"investigation_ready"`
	Reason             string `json:"reason,omitempty"`
}

func recordResults(results []domain.PipelineResult) []recordResult {
	out := make([]recordResult, 0, len(results))
	for _, res := range results {
		rr := recordResult{Status: string(res.Status)}
		if res.Record != nil {
			rr.ComplaintID = res.Record.ComplaintID
			rr.DataQualityScore = res.Record.DataQualityScore
			rr.InvestigationReady = res.Record.InvestigationReady
		}
		if res.Err != nil {
			_, rr.Reason = classify(res.Err)
		}
		out = append(out, rr)
	}
	return out
}

// Upload handles POST /api/v1/complaints/upload
// @Summary Upload a complaint file
// @Description Upload an NCRP complaint export (PDF, CSV, XLSX, or XLS) and run it through the ingestion pipeline
// @Tags complaints
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Complaint file (PDF, CSV, XLSX, XLS)"
// @Router /complaints/upload [post]
func (h *ComplaintHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > h.maxBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	kind, ok := domain.AllowedExtensions[ext]
	if !ok {
		HandleError(c, domain.ErrUnsupportedFile)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_UPLOAD", "could not read uploaded file")
		return
	}
	if int64(len(data)) > h.maxBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	batch, err := h.pipe.ProcessBatch(extract.RawInput{Data: data, Kind: kind})
	if err != nil {
		log.Printf("complaintHandler.Upload: %s rejected: %v", header.Filename, err)
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"accepted":  batch.Accepted,
		"duplicate": batch.Duplicate,
		"rejected":  batch.Rejected,
		"results":   recordResults(batch.Results),
		"total":     h.master.Count(),
		"message": fmt.Sprintf("processed %d new complaint(s), %d duplicate(s), %d rejected",
			batch.Accepted, batch.Duplicate, batch.Rejected),
	})
}

// List handles GET /api/v1/complaints
// @Summary List persisted complaints
// @Description Return every row of the master table
// @Tags complaints
// @Produce json
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	rows, err := h.master.Snapshot()
	if err != nil {
		log.Printf("complaintHandler.List: snapshot failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "STORE_READ_FAILED", "could not read master store")
		return
	}
	RespondOK(c, gin.H{
		"columns": store.Columns,
		"rows":    rows,
		"total":   len(rows),
	})
}

// Export handles GET /api/v1/complaints/export
// @Summary Export the master table
// @Description Download the master table as an .xlsx workbook
// @Tags complaints
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /complaints/export [get]
func (h *ComplaintHandler) Export(c *gin.Context) {
	rows, err := h.master.Snapshot()
	if err != nil {
		log.Printf("complaintHandler.Export: snapshot failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "STORE_READ_FAILED", "could not read master store")
		return
	}

	filename := fmt.Sprintf("ncrp_master_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.WriteWorkbook(c.Writer, rows); err != nil {
		log.Printf("complaintHandler.Export: write workbook failed: %v", err)
	}
}

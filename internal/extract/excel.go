package extract

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"ncrpintel/internal/domain"
)

// ExcelStrategy extracts complaint records from .xlsx workbooks. Only the
// first sheet is read; the first row must be a header.
type ExcelStrategy struct{}

func (s *ExcelStrategy) Kind() domain.SourceFileType { return domain.SourceSpreadsheet }

func (s *ExcelStrategy) ExtractAll(data []byte) ([]domain.ComplaintRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, domain.NewExtractionError(domain.ExtractUnreadable,
			fmt.Errorf("open workbook: %w", err))
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewExtractionError(domain.ExtractUnreadable,
			fmt.Errorf("workbook has no sheets"))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, domain.NewExtractionError(domain.ExtractUnreadable,
			fmt.Errorf("read sheet %q: %w", sheets[0], err))
	}
	return recordsFromRows(rows)
}

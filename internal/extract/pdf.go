package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"ncrpintel/internal/domain"
)

// PDFStrategy extracts one complaint record from a text-extractable NCRP
// PDF. Scanned documents with no text layer are unreadable (OCR is out of
// scope).
type PDFStrategy struct{}

func (s *PDFStrategy) Kind() domain.SourceFileType { return domain.SourcePDF }

// Text shorter than this cannot hold a complaint; matches the original
// system's floor.
const minPDFTextLen = 50

func (s *PDFStrategy) ExtractAll(data []byte) ([]domain.ComplaintRecord, error) {
	text, err := pdfText(data)
	if err != nil {
		return nil, domain.NewExtractionError(domain.ExtractUnreadable, err)
	}
	text = normalizePDFText(text)
	if len(strings.TrimSpace(text)) < minPDFTextLen {
		return nil, nil
	}

	rec, matched := applyLayouts(text)
	if !matched {
		return nil, domain.NewExtractionError(domain.ExtractUnreadable,
			fmt.Errorf("no layout rule matched"))
	}
	rec.Transactions = collectTransactions(text)
	return []domain.ComplaintRecord{rec}, nil
}

// pdfText extracts the text of every page. The pdf reader panics on some
// corrupt files, so the panic is converted into an error.
func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("corrupt PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip pages whose content stream cannot be decoded
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var multiNewlineRe = regexp.MustCompile(`\n+`)

// normalizePDFText makes line breaks predictable for the layout rules.
func normalizePDFText(text string) string {
	text = strings.ReplaceAll(text, "\r", "\n")
	return multiNewlineRe.ReplaceAllString(text, "\n")
}

// applyLayouts evaluates the configured layouts in priority order. The first
// layout whose complaint-id rules match wins outright. If none produces an
// id, the layout matching the most fields is used with the id left unset;
// matched reports whether any rule of any layout matched at all.
func applyLayouts(text string) (rec domain.ComplaintRecord, matched bool) {
	for _, l := range pdfLayouts {
		if firstMatch(l.rules[colComplaintID], text) != "" {
			return recordFromLayout(l, text), true
		}
	}

	best := -1
	var bestRec domain.ComplaintRecord
	for _, l := range pdfLayouts {
		r := recordFromLayout(l, text)
		if n := fieldCount(&r); n > best {
			best, bestRec = n, r
		}
	}
	return bestRec, best > 0
}

func recordFromLayout(l layout, text string) domain.ComplaintRecord {
	var rec domain.ComplaintRecord
	rec.ComplaintID = firstMatch(l.rules[colComplaintID], text)
	rec.Category = cutAtLabels(firstMatch(l.rules[colCategory], text))
	rec.SubCategory = cutAtLabels(firstMatch(l.rules[colSubCategory], text))
	rec.District = cutAtLabels(firstMatch(l.rules[colDistrict], text))
	rec.State = cutAtLabels(firstMatch(l.rules[colState], text))
	rec.Status = cutAtLabels(firstMatch(l.rules[colStatus], text))
	rec.ComplaintDate = parseDate(firstMatch(l.rules[colComplaintDate], text))
	rec.IncidentDate = parseDate(firstMatch(l.rules[colIncidentDate], text))
	rec.AmountLost = parseAmount(firstMatch(l.rules[colAmountLost], text))
	return rec
}

// fieldCount counts the populated non-derived fields of a layout result.
func fieldCount(r *domain.ComplaintRecord) int {
	n := 0
	for _, s := range []string{r.ComplaintID, r.Category, r.SubCategory, r.District, r.State, r.Status} {
		if s != "" {
			n++
		}
	}
	if r.ComplaintDate != nil {
		n++
	}
	if r.IncidentDate != nil {
		n++
	}
	if r.AmountLost != nil {
		n++
	}
	return n
}

// firstMatch returns the first capture group of the first pattern that
// matches, trimmed to the first line.
func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			val := strings.TrimSpace(m[1])
			if i := strings.IndexByte(val, '\n'); i >= 0 {
				val = strings.TrimSpace(val[:i])
			}
			if val != "" {
				return val
			}
		}
	}
	return ""
}

// cutAtLabels trims a free-text capture that ran into the next field label.
func cutAtLabels(val string) string {
	if loc := stopLabelRe.FindStringIndex(val); loc != nil {
		val = strings.TrimSpace(val[:loc[0]])
	}
	return val
}

// collectTransactions locates repeated transaction reference blocks and
// collects them in document order. Each block runs until the next reference
// label; an "Amount:" and a known bank or platform name inside the block
// belong to that transaction.
func collectTransactions(text string) []domain.TransactionRecord {
	locs := txnRefRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	docBank := findPlatform(text)
	seen := make(map[string]bool)
	var txns []domain.TransactionRecord
	for i, loc := range locs {
		id := strings.TrimSpace(text[loc[2]:loc[3]])
		if seen[id] {
			continue
		}
		seen[id] = true

		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		block := text[loc[1]:end]

		txn := domain.TransactionRecord{TransactionID: id}
		if m := txnAmtRe.FindStringSubmatch(block); m != nil {
			txn.Amount = parseAmount(m[1])
		}
		if bank := findPlatform(block); bank != "" {
			txn.BankOrPlatform = bank
		} else {
			txn.BankOrPlatform = docBank
		}
		txns = append(txns, txn)
	}
	return txns
}

// findPlatform scans text for the first known bank or platform name.
func findPlatform(text string) string {
	upper := strings.ToUpper(text)
	for _, p := range knownPlatforms {
		if strings.Contains(upper, strings.ToUpper(p)) {
			return p
		}
	}
	return ""
}

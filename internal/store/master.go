// Package store owns the master table: a flat, append-only CSV of accepted
// complaints plus the in-memory key set used for deduplication. The
// check-then-append sequence is the pipeline's only shared mutable state and
// is serialized under one mutex.
package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ncrpintel/internal/domain"
)

// Master is the append-only complaint store. Safe for concurrent use.
type Master struct {
	mu   sync.Mutex
	path string
	f    *os.File
	keys map[string]struct{}
	rows int
}

// Open loads (or creates) the master file at path and builds the in-memory
// key set from every persisted row.
func Open(path string) (*Master, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	m := &Master{path: path, keys: make(map[string]struct{})}
	if err := m.load(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open master file: %w", err)
	}
	m.f = f
	return m, nil
}

func (m *Master) load() error {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return m.writeHeader()
	}
	if err != nil {
		return fmt.Errorf("read master file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return m.writeHeader()
	}

	rows, err := parseRows(data)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row[0]))
		if key != "" {
			m.keys[key] = struct{}{}
			m.rows++
		}
	}
	return nil
}

func (m *Master) writeHeader() error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	w.Flush()
	if err := os.WriteFile(m.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write master header: %w", err)
	}
	return nil
}

// Upsert appends rec if its key is unseen. The key comparison trims
// whitespace and ignores case; the stored row keeps the original casing.
// The on-disk append and the key-set update happen as one unit: the key is
// only added after the row has durably landed.
func (m *Master) Upsert(rec *domain.ComplaintRecord) (domain.ResultStatus, error) {
	key := rec.DedupKey()
	if key == "" {
		return domain.StatusRejected, domain.ErrMissingComplaintID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.keys[key]; dup {
		return domain.StatusDuplicate, nil
	}

	// Encode the full row first so it hits the file in a single write; a row
	// is written whole or not at all.
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(recordToRow(rec)); err != nil {
		return "", fmt.Errorf("encode row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("encode row: %w", err)
	}

	if _, err := m.f.Write(buf.Bytes()); err != nil {
		return "", fmt.Errorf("append row: %w", err)
	}
	if err := m.f.Sync(); err != nil {
		return "", fmt.Errorf("sync master file: %w", err)
	}

	m.keys[key] = struct{}{}
	m.rows++
	return domain.StatusAccepted, nil
}

// Count returns the number of persisted rows.
func (m *Master) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows
}

// Snapshot returns every persisted row (without the header), read under the
// store lock so it never observes a torn append.
func (m *Master) Snapshot() ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("read master file: %w", err)
	}
	return parseRows(data)
}

// Close closes the underlying file handle.
func (m *Master) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.f.Close()
}

// parseRows parses the master CSV and strips the header row.
func parseRows(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse master file: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 && rows[0][0] == Columns[0] {
		rows = rows[1:]
	}
	return rows, nil
}

package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// CSVStore appends rows to one append-only CSV file. Concurrent appends are
// serialized so partial rows never interleave; the lock is released even when
// the write fails.
type CSVStore struct {
	mu   sync.Mutex
	path string
}

// NewCSVStore returns a store writing to the given file path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Append writes one row, preceded by the header row when the file is new or
// empty. Rows are quoted per RFC 4180, so embedded quotes and commas round-trip.
func (s *CSVStore) Append(header, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("csv store: open %s: %w", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("csv store: stat %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("csv store: write header: %w", err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("csv store: write row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv store: flush %s: %w", s.path, err)
	}
	return nil
}

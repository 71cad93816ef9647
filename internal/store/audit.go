package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// AuditEntry is one line of the submission audit log.
type AuditEntry struct {
	ID        string            `json:"id"`
	Timestamp string            `json:"timestamp"`
	Form      string            `json:"form"`
	Fields    map[string]string `json:"fields,omitempty"`
	Delivered bool              `json:"delivered"`
}

// AuditLog appends one JSON object per line to an append-only log file.
type AuditLog struct {
	mu   sync.Mutex
	path string
}

// NewAuditLog returns a log writing to the given file path.
func NewAuditLog(path string) *AuditLog {
	return &AuditLog{path: path}
}

// Append writes a single entry.
func (l *AuditLog) Append(entry AuditEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("audit log: marshal entry: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("audit log: open %s: %w", l.path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("audit log: write entry: %w", err)
	}
	return nil
}

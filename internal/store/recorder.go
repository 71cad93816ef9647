package store

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/careerninja/forms-api/internal/form"
)

// recordedAtLayout is the timestamp format used in both stores.
const recordedAtLayout = "2006-01-02 15:04:05"

// Recorder persists one validated submission to the schema's CSV store and
// audit log. Failures are reported to the caller for logging but must not
// change the user-facing outcome of a request.
type Recorder struct {
	schema form.Schema
	store  *CSVStore
	audit  *AuditLog
}

// NewRecorder wires a recorder for the schema, with both files under dataDir.
func NewRecorder(dataDir string, schema form.Schema) *Recorder {
	return &Recorder{
		schema: schema,
		store:  NewCSVStore(filepath.Join(dataDir, schema.StoreFile)),
		audit:  NewAuditLog(filepath.Join(dataDir, schema.AuditFile)),
	}
}

// Record appends the submission row and its audit entry. Both writes are
// attempted even if the first fails.
func (r *Recorder) Record(s form.Submission, submittedAt time.Time, delivered bool) error {
	header := make([]string, 0, len(r.schema.Columns)+1)
	row := make([]string, 0, len(r.schema.Columns)+1)
	header = append(header, "Timestamp")
	row = append(row, submittedAt.Format(recordedAtLayout))
	for _, col := range r.schema.Columns {
		header = append(header, col.Header)
		value := s[col.Field]
		if value == "" {
			value = col.Fallback
		}
		row = append(row, value)
	}
	csvErr := r.store.Append(header, row)

	fields := make(map[string]string, len(r.schema.AuditFields))
	for _, name := range r.schema.AuditFields {
		fields[name] = s[name]
	}
	auditErr := r.audit.Append(AuditEntry{
		ID:        uuid.NewString(),
		Timestamp: submittedAt.Format(recordedAtLayout),
		Form:      r.schema.ID,
		Fields:    fields,
		Delivered: delivered,
	})

	return errors.Join(csvErr, auditErr)
}

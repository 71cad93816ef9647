package form

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/careerninja/forms-api/internal/common"
	"github.com/careerninja/forms-api/internal/mail"
	"github.com/careerninja/forms-api/internal/obs"
)

// Recorder persists one validated submission. Implemented by store.Recorder.
type Recorder interface {
	Record(s Submission, submittedAt time.Time, delivered bool) error
}

// Response is the JSON payload returned for every submission request.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Handler processes form submissions end to end: sanitize, validate, render,
// deliver, record, respond. It holds no per-request state.
type Handler struct {
	Schemas         map[string]Schema
	Recorders       map[string]Recorder
	Mailer          mail.Mailer
	Recipient       string
	FallbackContact string
	DeliveryTimeout time.Duration
	Logger          zerolog.Logger
	Metrics         *obs.FormMetrics
	// Now overrides the submission clock in tests.
	Now func() time.Time
}

// Submit handles POST /process/{form}.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, chi.URLParam(r, "form"))
}

// ForForm returns a handler bound to a fixed form ID, used for the legacy
// per-form endpoints.
func (h *Handler) ForForm(id string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.process(w, r, id)
	}
}

func (h *Handler) process(w http.ResponseWriter, r *http.Request, formID string) {
	if r.Method != http.MethodPost {
		common.JSON(w, http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
		return
	}
	schema, ok := h.Schemas[formID]
	if !ok {
		common.JSON(w, http.StatusNotFound, Response{Success: false, Message: "Unknown form"})
		return
	}
	if err := r.ParseForm(); err != nil {
		common.JSON(w, http.StatusBadRequest, Response{Success: false, Message: "Invalid form data"})
		return
	}

	s := Sanitize(r.PostForm, schema)
	if errs := Validate(s, schema); len(errs) > 0 {
		h.countSubmission(schema.ID, obs.ResultRejected)
		common.JSON(w, http.StatusBadRequest, Response{Success: false, Message: "Validation failed", Errors: errs})
		return
	}

	submittedAt := h.now()
	delivered := false
	msg, err := Render(s, schema, h.Recipient, submittedAt)
	if err != nil {
		h.Logger.Error().Err(err).Str("form", schema.ID).Msg("render notification")
	} else {
		delivered = h.deliver(r.Context(), schema, msg)
	}

	// Persistence is independent of delivery: the record is appended for
	// every valid submission and a write failure never reaches the caller.
	if rec := h.Recorders[schema.ID]; rec != nil {
		if err := rec.Record(s, submittedAt, delivered); err != nil {
			h.Logger.Error().Err(err).Str("form", schema.ID).Msg("record submission")
			if h.Metrics != nil {
				h.Metrics.RecordFailures.WithLabelValues(schema.ID, "store").Inc()
			}
		}
	}

	if !delivered {
		h.countSubmission(schema.ID, obs.ResultDeliveryFailed)
		common.JSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Message: fmt.Sprintf(schema.FailureMessage, h.FallbackContact),
		})
		return
	}
	h.countSubmission(schema.ID, obs.ResultAccepted)
	common.JSON(w, http.StatusOK, Response{Success: true, Message: schema.SuccessMessage})
}

// deliver makes exactly one bounded attempt and reports the outcome as data.
// No transport fault propagates past this point.
func (h *Handler) deliver(ctx context.Context, schema Schema, msg mail.Message) bool {
	if h.Mailer == nil {
		h.Logger.Error().Str("form", schema.ID).Msg("no mailer configured")
		return false
	}
	timeout := h.DeliveryTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := h.Mailer.Send(ctx, msg)
	if h.Metrics != nil {
		h.Metrics.DeliveriesTotal.WithLabelValues(schema.ID, strconv.FormatBool(err == nil)).Inc()
		h.Metrics.DeliveryDuration.WithLabelValues(schema.ID).Observe(obs.DurationMillis(time.Since(start)))
	}
	if err != nil {
		h.Logger.Error().Err(err).Str("form", schema.ID).Str("to", msg.To).Msg("deliver notification")
		return false
	}
	return true
}

func (h *Handler) countSubmission(formID, result string) {
	if h.Metrics == nil {
		return
	}
	h.Metrics.SubmissionsTotal.WithLabelValues(formID, result).Inc()
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

package payslip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Renderer turns a calculated payslip into a rendered document encoded as
// a base64 PDF data URI.
type Renderer interface {
	Render(ctx context.Context, slip Payslip) (string, error)
}

// Generator runs calculation and rendering over sheet rows. Batch
// processing is strictly sequential: one record reaches a terminal state,
// success or failure, before the next begins.
type Generator struct {
	employer Employer
	renderer Renderer
	now      func() time.Time
}

func NewGenerator(employer Employer, renderer Renderer) *Generator {
	return &Generator{employer: employer, renderer: renderer, now: time.Now}
}

// GenerateOne runs a single generation attempt. A failure in calculation
// or layout ends up in the record's Failed state rather than an error
// return, so a batch caller never has to abort sibling records.
func (g *Generator) GenerateOne(ctx context.Context, input EmployeeInput) (rec BatchRecord) {
	rec = BatchRecord{ID: uuid.NewString(), Input: input, Status: RecordStatusGenerating}
	defer func() {
		if r := recover(); r != nil {
			rec.Status = RecordStatusFailed
			rec.Document = ""
			rec.Err = fmt.Sprintf("payslip generation panic: %v", r)
		}
	}()

	slip, err := Calculate(input, g.employer, g.now())
	if err != nil {
		rec.Status = RecordStatusFailed
		rec.Err = err.Error()
		return rec
	}

	doc, err := g.renderer.Render(ctx, slip)
	if err != nil {
		rec.Status = RecordStatusFailed
		rec.Err = err.Error()
		return rec
	}

	rec.Status = RecordStatusSucceeded
	rec.Document = doc
	return rec
}

// GenerateAll attempts every input in order and reports the tally after
// the full pass. The returned slice preserves input order and always has
// one terminal record per input.
func (g *Generator) GenerateAll(ctx context.Context, inputs []EmployeeInput) []BatchRecord {
	records := make([]BatchRecord, 0, len(inputs))
	succeeded, failed := 0, 0
	for _, input := range inputs {
		rec := g.GenerateOne(ctx, input)
		switch rec.Status {
		case RecordStatusSucceeded:
			succeeded++
		case RecordStatusFailed:
			failed++
		}
		records = append(records, rec)
	}
	slog.Info("payslip batch complete", "total", len(inputs), "succeeded", succeeded, "failed", failed)
	return records
}

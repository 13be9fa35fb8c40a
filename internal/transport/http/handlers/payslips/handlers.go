package payslipshandler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"payslipgen/internal/archive"
	"payslipgen/internal/domain/payslip"
	"payslipgen/internal/ingest"
	"payslipgen/internal/transport/http/api"
	"payslipgen/internal/transport/http/middleware"
)

type Handler struct {
	Generator *payslip.Generator
}

func NewHandler(generator *payslip.Generator) *Handler {
	return &Handler{Generator: generator}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/payslips/preview", h.HandlePreview)
	r.Post("/payslips/generate", h.HandleGenerateOne)
	r.Post("/payslips/generate-all", h.HandleGenerateAll)
	r.Post("/payslips/archive", h.HandleArchive)
}

func (h *Handler) requireOperator(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := middleware.GetOperator(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

// parseUpload reads the "file" part of a multipart upload and runs the
// sheet ingester over it.
func (h *Handler) parseUpload(w http.ResponseWriter, r *http.Request) ([]payslip.EmployeeInput, bool) {
	file, _, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "missing_file", "upload a workbook in the 'file' field", middleware.GetRequestID(r.Context()))
		return nil, false
	}
	defer func() { _ = file.Close() }()

	inputs, err := ingest.Parse(file)
	if err != nil {
		api.Fail(w, http.StatusUnprocessableEntity, "parse_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return nil, false
	}
	return inputs, true
}

// HandlePreview parses an uploaded workbook and returns the validated rows
// without generating anything.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	if !h.requireOperator(w, r) {
		return
	}
	inputs, ok := h.parseUpload(w, r)
	if !ok {
		return
	}
	api.Success(w, inputs, middleware.GetRequestID(r.Context()))
}

// HandleGenerateOne accepts a single sheet row as JSON and streams the
// rendered PDF back as a download.
func (h *Handler) HandleGenerateOne(w http.ResponseWriter, r *http.Request) {
	if !h.requireOperator(w, r) {
		return
	}

	var input payslip.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	rec := h.Generator.GenerateOne(r.Context(), input)
	if rec.Status != payslip.RecordStatusSucceeded {
		api.Fail(w, http.StatusUnprocessableEntity, "generation_failed", rec.Err, middleware.GetRequestID(r.Context()))
		return
	}

	payload, ok := decodeDocument(rec.Document)
	if !ok {
		api.Fail(w, http.StatusInternalServerError, "generation_failed", "generated document is malformed", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+payslip.DocumentFileName(input)+`"`)
	if _, err := w.Write(payload); err != nil {
		log.Printf("payslip download write failed: %v", err)
	}
}

type batchReportRecord struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Month    string `json:"month"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Document string `json:"document,omitempty"`
}

type batchReport struct {
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Records   []batchReportRecord `json:"records"`
}

// HandleGenerateAll parses an uploaded workbook, generates every payslip
// sequentially, and returns a per-record report with the documents inline.
func (h *Handler) HandleGenerateAll(w http.ResponseWriter, r *http.Request) {
	if !h.requireOperator(w, r) {
		return
	}
	inputs, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	records := h.Generator.GenerateAll(r.Context(), inputs)
	report := batchReport{Total: len(records), Records: make([]batchReportRecord, 0, len(records))}
	for _, rec := range records {
		switch rec.Status {
		case payslip.RecordStatusSucceeded:
			report.Succeeded++
		case payslip.RecordStatusFailed:
			report.Failed++
		}
		report.Records = append(report.Records, batchReportRecord{
			ID:       rec.ID,
			FullName: rec.Input.FullName,
			Month:    rec.Input.Month,
			Status:   rec.Status,
			Error:    rec.Err,
			Document: rec.Document,
		})
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

// HandleArchive generates every payslip from an uploaded workbook and
// streams the successful ones back as a single zip. Failed records are
// excluded from the archive.
func (h *Handler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	if !h.requireOperator(w, r) {
		return
	}
	inputs, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	records := h.Generator.GenerateAll(r.Context(), inputs)
	var entries []archive.Entry
	for _, rec := range records {
		if rec.Status != payslip.RecordStatusSucceeded {
			continue
		}
		entries = append(entries, archive.Entry{
			Filename: payslip.DocumentFileName(rec.Input),
			Document: rec.Document,
		})
	}
	if len(entries) == 0 {
		api.Fail(w, http.StatusUnprocessableEntity, "no_documents", "no payslips were generated successfully", middleware.GetRequestID(r.Context()))
		return
	}

	var buf bytes.Buffer
	if _, err := archive.Build(&buf, entries); err != nil {
		api.Fail(w, http.StatusInternalServerError, "archive_failed", "could not assemble archive", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="All_Payslips.zip"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("archive download write failed: %v", err)
	}
}

func decodeDocument(doc string) ([]byte, bool) {
	_, encoded, ok := strings.Cut(doc, ",")
	if !ok {
		return nil, false
	}
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Package archive bundles generated payslip documents into a single zip
// download.
package archive

import (
	"archive/zip"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Entry pairs a target filename with a rendered document encoded as a
// base64 data URI.
type Entry struct {
	Filename string
	Document string
}

// Build writes one zip entry per document and reports how many were
// added. A ".pdf" suffix is appended when the filename lacks one. Entries
// whose payload cannot be decoded are skipped with a warning; a failure
// assembling the archive itself aborts the build.
func Build(w io.Writer, entries []Entry) (int, error) {
	zw := zip.NewWriter(w)
	added := 0
	for _, entry := range entries {
		payload, ok := decodeDataURI(entry.Document)
		if !ok {
			slog.Warn("skipping archive entry with malformed document payload", "filename", entry.Filename)
			continue
		}
		name := entry.Filename
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			name += ".pdf"
		}
		file, err := zw.Create(name)
		if err != nil {
			_ = zw.Close()
			return added, fmt.Errorf("create archive entry %s: %w", name, err)
		}
		if _, err := file.Write(payload); err != nil {
			_ = zw.Close()
			return added, fmt.Errorf("write archive entry %s: %w", name, err)
		}
		added++
	}
	if err := zw.Close(); err != nil {
		return added, fmt.Errorf("finalize archive: %w", err)
	}
	return added, nil
}

// decodeDataURI extracts the base64 payload from a data URI of the form
// data:<mimetype>;base64,<encoded>.
func decodeDataURI(uri string) ([]byte, bool) {
	_, encoded, ok := strings.Cut(uri, ",")
	if !ok || encoded == "" {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false
	}
	return data, true
}

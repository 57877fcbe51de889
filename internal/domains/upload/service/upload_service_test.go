package service

import (
	"bytes"
	"testing"

	"posterdeck-backend/internal/domains/upload"

	"github.com/stretchr/testify/assert"
)

func TestInspectPDFRejectsNonPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"plain text", []byte("hello world")},
		{"png magic", []byte("\x89PNG\r\n\x1a\n")},
		{"html", []byte("<!DOCTYPE html><html></html>")},
		{"pdf marker not at start", []byte("garbage%PDF-1.7")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InspectPDF(tt.data)
			assert.ErrorIs(t, err, upload.ErrNotPDF)
		})
	}
}

func TestInspectPDFRejectsMalformedPDF(t *testing.T) {
	// Bodies that carry the magic bytes but no parsable document. The
	// parser slices fixed-size trailer sections without bounds checks,
	// so these must come back as a clean ErrNotPDF, never a panic.
	tests := []struct {
		name string
		data []byte
	}{
		{"header only", []byte("%PDF-1.7\n")},
		{"shorter than a trailer section", append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("x"), 100)...)},
		{"long but junk behind the header", append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("junk "), 1000)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() {
				_, err = InspectPDF(tt.data)
			})
			assert.ErrorIs(t, err, upload.ErrNotPDF)
		})
	}
}

package upload

import "errors"

var (
	// ErrNotPDF: the uploaded bytes don't parse as a PDF document.
	ErrNotPDF = errors.New("file is not a valid PDF")

	// ErrStorage: blob storage rejected or never received the bytes.
	// Surfaced distinctly so the user knows the file was not stored,
	// as opposed to a later metadata-save failure.
	ErrStorage = errors.New("blob storage unavailable")
)

package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"posterdeck-backend/internal/domains/upload"
	"posterdeck-backend/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/midbel/pdf"
)

// PDFInfo is what we learn about a deck before storing it.
type PDFInfo struct {
	PageCount int
	Title     string
	Author    string
}

// UploadToken is a presigned capability for a direct-to-storage upload.
type UploadToken struct {
	URL     string `json:"url"`     // PUT the bytes here
	Key     string `json:"key"`     // object key the token is bound to
	FileURL string `json:"fileUrl"` // public URL to save on the poster
}

type UploadService struct {
	storage       *storage.MinIOStorage
	presignExpiry time.Duration
}

func NewUploadService(st *storage.MinIOStorage, presignExpiry time.Duration) *UploadService {
	return &UploadService{
		storage:       st,
		presignExpiry: presignExpiry,
	}
}

// Upload validates the bytes as PDF, stores them, and returns the
// public URL. Phase two (saving the metadata record) is a separate call
// against the posters endpoint, per the two-phase upload contract.
func (s *UploadService) Upload(ctx context.Context, data []byte) (string, *PDFInfo, error) {
	info, err := InspectPDF(data)
	if err != nil {
		return "", nil, err
	}

	key := fmt.Sprintf("posters/%s.pdf", uuid.NewString())

	url, err := s.storage.Upload(ctx, key, data, "application/pdf")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", upload.ErrStorage, err)
	}

	return url, info, nil
}

// IssueToken hands out a presigned PUT URL so the client can push the
// bytes straight to blob storage. The server never sees them; page
// count stays unknown (0) for posters created this way.
func (s *UploadService) IssueToken(ctx context.Context) (*UploadToken, error) {
	key := fmt.Sprintf("posters/%s.pdf", uuid.NewString())

	url, err := s.storage.PresignedPut(ctx, key, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", upload.ErrStorage, err)
	}

	return &UploadToken{
		URL:     url,
		Key:     key,
		FileURL: s.storage.ObjectURL(key),
	}, nil
}

// InspectPDF parses the document and extracts its page count and any
// embedded title/author. The parser wants a file on disk, so the bytes
// take a detour through a temp file.
func InspectPDF(data []byte) (*PDFInfo, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, upload.ErrNotPDF
	}

	tmp, err := os.CreateTemp("", "posterdeck-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	doc, err := openDocument(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", upload.ErrNotPDF, err)
	}
	defer doc.Close()

	fileInfo := doc.GetDocumentInfo()

	return &PDFInfo{
		PageCount: int(doc.GetCount()),
		Title:     fileInfo.Title,
		Author:    fileInfo.Author,
	}, nil
}

// openDocument shields callers from the parser: it indexes fixed-size
// trailer sections without bounds checks, so truncated or hand-crafted
// input can panic instead of erroring. Anything the parser chokes on is
// just not a usable PDF.
func openDocument(path string) (doc *pdf.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()
	return pdf.Open(path)
}

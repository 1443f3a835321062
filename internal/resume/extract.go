package resume

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"jobtrack-engine/internal/domain"
)

// TextExtractor turns an uploaded document into plain text. Implementations
// are black boxes: bytes in, text out, or ErrUnreadableDocument.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// PDFExtractor reads PDF resumes.
type PDFExtractor struct{}

func (PDFExtractor) Extract(data []byte) (text string, err error) {
	// the pdf library panics on some malformed files; treat that the same
	// as any other unreadable document
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, rec)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}
	return sb.String(), nil
}

package gateway

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dslipak/pdf"
)

// PDFTextExtractor extracts the plain text of a ledger export. Files with a .txt
// extension are taken as already extracted text.
type PDFTextExtractor struct{}

// NewPDFTextExtractor creates a new extractor.
func NewPDFTextExtractor() *PDFTextExtractor {
	return &PDFTextExtractor{}
}

// ExtractText returns the text content of the file at path.
func (e *PDFTextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read ledger text %s: %w", path, err)
		}
		return string(b), nil
	}

	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", path, err)
	}
	return buf.String(), nil
}

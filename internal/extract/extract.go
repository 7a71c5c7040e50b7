// Package extract provides the text lines of a statement document to the
// import pipeline. The pipeline only sees ordered lines; where they come
// from (pdftotext today) is an injected capability.
package extract

import (
	"fmt"
	"os/exec"
	"strings"
)

// LineExtractor returns the raw text lines of a statement file, one call
// per file, page order preserved.
type LineExtractor interface {
	ExtractLines(path string) ([]string, error)
}

// PDFToText extracts text by shelling out to the pdftotext binary.
type PDFToText struct {
	// Binary overrides the pdftotext executable name. Empty means "pdftotext"
	// from PATH.
	Binary string
}

func NewPDFToText(binary string) *PDFToText {
	return &PDFToText{Binary: binary}
}

// ExtractLines runs pdftotext in layout mode and splits its output into
// lines. Layout mode keeps each transaction on a single text line.
func (p *PDFToText) ExtractLines(path string) ([]string, error) {
	binary := p.Binary
	if binary == "" {
		binary = "pdftotext"
	}
	cmd := exec.Command(binary, "-layout", path, "-")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext %s: %w", path, err)
	}
	return strings.Split(string(output), "\n"), nil
}

package extract

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for anything that is not a PDF or
// DOCX resume.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")

// SectionLines extracts the skills-section lines from a resume
// document, dispatching on the file extension. A nil result with nil
// error means no skills section was found (or it was empty).
func SectionLines(filename string, data []byte) ([]string, error) {
	var lines []string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		lines, err = PDFLines(data)
	case ".docx":
		lines, err = DocxLines(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return Section(lines), nil
}

package extract

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var (
	wideGap    = regexp.MustCompile(`\s{2,}`)
	pageFooter = regexp.MustCompile(`^\d+ of \d+`)
)

// PDFLines extracts cleaned text lines from a PDF document. Fragments
// separated by wide whitespace gaps become separate lines, so
// column-style skill layouts survive the flattening.
func PDFLines(data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return nil, err
	}
	return splitFragments(buf.String()), nil
}

// splitFragments turns raw page text into cleaned line fragments,
// dropping checkbox noise and "N of M" page footers.
func splitFragments(text string) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		for _, frag := range wideGap.Split(ln, -1) {
			f := cleanLine(frag)
			if f == "" || pageFooter.MatchString(f) {
				continue
			}
			out = append(out, f)
		}
	}
	return out
}

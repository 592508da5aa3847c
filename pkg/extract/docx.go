package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// DocxLines extracts text lines from a DOCX document: one line per
// paragraph, with table rows flattened ("left: right" for the common
// two-cell skill matrix, one line per cell otherwise).
func DocxLines(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			if doc, err = f.Open(); err != nil {
				return nil, err
			}
			break
		}
	}
	if doc == nil {
		return nil, errors.New("no document.xml found in docx")
	}
	defer doc.Close()
	return docxWalk(doc)
}

func docxWalk(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var lines []string
	var para, cell strings.Builder
	var cells []string
	tableDepth := 0
	inCell := false
	inText := false

	emit := func(s string) {
		if ln := cleanLine(s); ln != "" {
			lines = append(lines, ln)
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tr":
				cells = cells[:0]
			case "tc":
				inCell = true
				cell.Reset()
			case "t":
				inText = true
			case "tab":
				if inCell {
					cell.WriteByte('\t')
				} else {
					para.WriteByte('\t')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inCell {
					cell.WriteByte(' ')
				} else {
					emit(para.String())
					para.Reset()
				}
			case "tc":
				inCell = false
				if s := strings.TrimSpace(cell.String()); s != "" {
					cells = append(cells, s)
				}
			case "tr":
				if tableDepth > 0 {
					if len(cells) == 2 {
						emit(cells[0] + ": " + cells[1])
					} else {
						for _, c := range cells {
							emit(c)
						}
					}
				}
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if inCell {
				cell.Write(t)
			} else {
				para.Write(t)
			}
		}
	}
	return lines, nil
}

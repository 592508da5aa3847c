// Package extract locates the skills section inside PDF and DOCX
// resumes and hands back its raw lines in document order. Everything
// downstream (tokenizing, matching) works on that line sequence only.
package extract

import (
	"regexp"
	"strings"
)

// Spellings of skills-section headers seen across the resume corpus.
var headerRe = regexp.MustCompile(`(?i)^\s*[-•*]?\s*(?:` +
	`primary\s*/\s*additional\s+skills` +
	`|additional\s+skills` +
	`|technology\s+skill\s+set\s+summary` +
	`|skill\s+set\s+summary` +
	`|skills?\s+summary` +
	`|skills?` +
	`|technical\s+skills` +
	`|technicalskills` +
	`|technical\s+skill` +
	`|technical\s+skill\s+set` +
	`|key\s+skills` +
	`|skills\s+profile` +
	`|areas\s+of\s+expertise` +
	`|technical\s+competencies\s*/\s*skills` +
	`|technical\s+skills\s*(?:&|and)\s*tools` +
	`|technical\s+skills\s*(?:&|and)\s*competencies` +
	`|technical\s*/\s*software\s+exposure` +
	`|skills\s*(?:&|and)\s*(?:tools|technologies)` +
	`|core\s+competencies` +
	`|skills\s*(?:&|and)\s*competencies` +
	`|tools\s*(?:&|and)\s*technology` +
	`|skills\s*(?:&|and)\s*abilities` +
	`|core\s+skills` +
	`|technical\s*(?:proficiencies|proficiency)` +
	`|technical\s+expertise` +
	`|professional\s+skills` +
	`|it\s+skills` +
	`|relevant\s+skills` +
	`|skill\s+set` +
	`|top\s+skills` +
	`|technology\s+competencies` +
	`|software\s+skills` +
	`|expertise` +
	`)\s*:?\s*$`)

// Headers of the sections that typically follow the skills block.
var nextHeaderRe = regexp.MustCompile(`(?i)^\s*(?:` +
	`education|responsibilities|educational qualification|professional\s+experience` +
	`|personal details|academic performance|experience|projects?` +
	`|publications|certifications|volunteering|awards|interests|work history` +
	`|career profile|academic profile|employment profile` +
	`|work\s+experience|date|non technical skills|sincerely|regards|summary` +
	`|personal\s+interests|career\s+timeline|hobbies` +
	`|career summary|professional summary|academic details|latest project experience` +
	`|key engagements|professional timeline|academic information|working experience` +
	`|educational details|key\s+roles\s*(?:&|and)\s*responsibilities|workexperience` +
	`)\b`)

const (
	// checkbox glyphs that mark skill-matrix noise rather than content
	boxChars = "☐□☑◻◼"
	// bullet prefixes stripped from list entries
	bulletChars = "⚫●•*-▪"
)

// IsBoundary reports whether a line is a section header (either a
// skills header or the start of the next resume section). Used both to
// bound the captured section and to stop continuation merging.
func IsBoundary(line string) bool {
	return headerRe.MatchString(line) || nextHeaderRe.MatchString(line)
}

// Section returns the lines between the skills header and the next
// section header. Nil when no skills header is found.
func Section(lines []string) []string {
	var sec []string
	capturing := false
	for _, ln := range lines {
		if !capturing {
			if headerRe.MatchString(ln) {
				capturing = true
			}
			continue
		}
		if nextHeaderRe.MatchString(ln) {
			break
		}
		sec = append(sec, ln)
	}
	return sec
}

// cleanLine drops checkbox fragments entirely and strips leading
// bullets from the rest.
func cleanLine(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.ContainsAny(raw, boxChars) {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(raw, bulletChars))
}

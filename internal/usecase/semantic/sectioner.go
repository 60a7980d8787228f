package semantic

import "strings"

// SplitResumeSections breaks plain resume text into comparable sections by
// splitting on blank-line boundaries. Sections are trimmed and empty results
// dropped; a resume with no blank lines yields one section, the whole text.
func SplitResumeSections(resumeText string) []string {
	var sections []string
	for _, part := range strings.Split(resumeText, "\n\n") {
		if s := strings.TrimSpace(part); s != "" {
			sections = append(sections, s)
		}
	}
	return sections
}

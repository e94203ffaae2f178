// Package latex turns an extracted snippet into its downloadable and previewable forms.
package latex

import "strings"

const (
	preamble = "\\documentclass{article}\n" +
		"\\usepackage[utf8]{inputenc}\n" +
		"\\usepackage[T1]{fontenc}\n" +
		"\\usepackage{lmodern}\n" +
		"\\usepackage{amsmath,amssymb}\n" +
		"\\usepackage[margin=2cm]{geometry}\n"

	beginDocument = "\\begin{document}\n\n"
	endDocument   = "\n\n\\end{document}\n"
)

// WrapDocument embeds snippet verbatim in a standalone article document.
func WrapDocument(snippet string) string {
	var b strings.Builder
	b.Grow(len(preamble) + len(beginDocument) + len(snippet) + len(endDocument))
	b.WriteString(preamble)
	b.WriteString(beginDocument)
	b.WriteString(snippet)
	b.WriteString(endDocument)
	return b.String()
}

// StripPreamble recovers the snippet from a document built by WrapDocument.
// It reports false when doc does not have that shape.
func StripPreamble(doc string) (string, bool) {
	body, ok := strings.CutPrefix(doc, preamble+beginDocument)
	if !ok {
		return "", false
	}
	return strings.CutSuffix(body, endDocument)
}

package gen

import (
	"strings"

	"wrapgen/ir"
)

func ensurePeriod(s string) string {
	if !strings.HasSuffix(s, ".") {
		return s + "."
	}
	return s
}

func ensureDoubleLinebreakIfNotEmpty(s string) string {
	if s == "" || strings.HasSuffix(s, "\n\n") {
		return s
	}
	if strings.HasSuffix(s, "\n") {
		return s + "\n"
	}
	return s + "\n\n"
}

// DocsToDocstring renders docs into the plain-text docstring body every
// backend wraps and indents its own way. Grounded on
// documentation.py's docs_to_docstring.
func DocsToDocstring(docs ir.Documentation) string {
	var re string

	if docs.Title != "" {
		re += docs.Title
	}

	if docs.Description != "" {
		re = ensureDoubleLinebreakIfNotEmpty(re)
		re += ensurePeriod(docs.Description)
	}

	if len(docs.Authors) > 0 {
		re = ensureDoubleLinebreakIfNotEmpty(re)
		if len(docs.Authors) == 1 {
			re += "Author: " + docs.Authors[0]
		} else {
			re += "Authors: " + strings.Join(docs.Authors, ", ")
		}
	}

	if len(docs.Literature) > 0 {
		re = ensureDoubleLinebreakIfNotEmpty(re)
		if len(docs.Literature) == 1 {
			re += "Literature: " + docs.Literature[0]
		} else {
			re += "Literature:\n" + strings.Join(docs.Literature, "\n")
		}
	}

	if len(docs.URLs) > 0 {
		re = ensureDoubleLinebreakIfNotEmpty(re)
		if len(docs.URLs) == 1 {
			re += "URL: " + docs.URLs[0]
		} else {
			re += "URLs:\n" + strings.Join(docs.URLs, "\n")
		}
	}

	return re
}

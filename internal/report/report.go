package report

import (
	"fmt"
	"strings"

	"seogen/internal/core"
	"seogen/internal/generate"
)

// Verdict reports whether every generated field passed both its length check
// and its keyword check. True only when all three fields are simultaneously
// clean.
func Verdict(res *core.SEOResult) bool {
	if len(res.Checks) == 0 {
		return false
	}
	for _, c := range res.Checks {
		if !c.OKLength || len(c.MissingKeywords) > 0 {
			return false
		}
	}
	return true
}

// Format renders a result into a human-readable multi-line report: topic,
// language and keywords, then per field the length versus its maximum, a
// length-ok marker and any missing keywords, and finally the aggregate
// verdict. Pure function; the caller decides where the text goes.
func Format(res *core.SEOResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", res.Topic)
	fmt.Fprintf(&b, "Language: %s\n", res.Language)
	fmt.Fprintf(&b, "Keywords: %s\n", listOrDash(res.Keywords))
	b.WriteString("\n")

	writeField(&b, "TITLE", string(generate.FieldTitle), res.Title, res)
	writeField(&b, "META", string(generate.FieldMetaDescription), res.MetaDescription, res)
	writeField(&b, "SUMMARY", string(generate.FieldSummary), res.Summary, res)

	fmt.Fprintf(&b, "Model: %s\n", res.ModelUsed)
	fmt.Fprintf(&b, "Generated: %s\n", res.Timestamp.Format("2006-01-02 15:04:05"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "All constraints satisfied: %s\n", mark(Verdict(res)))

	return b.String()
}

func writeField(b *strings.Builder, label, name, text string, res *core.SEOResult) {
	check := res.Checks[name]
	fmt.Fprintf(b, "%s (%d/%d): %s\n", label, check.Length, check.MaxAllowed, text)
	fmt.Fprintf(b, "  Length OK: %s; Missing keywords: %s\n", mark(check.OKLength), listOrDash(check.MissingKeywords))
	b.WriteString("\n")
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, ", ")
}

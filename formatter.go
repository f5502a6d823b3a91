package pepper

import (
	"strconv"
	"strings"
)

// SearchHeader is the first row of every search result table.
const SearchHeader = "Status/Type | PEP | Title | Authors"

// FormatHeader renders a header as the raw title, a blank line, then one
// indented line per field. The first author shares the Author line and the
// remaining authors follow on their own, indented one level deeper. Other
// list fields are joined with commas.
func FormatHeader(h *Header) string {
	var b strings.Builder
	b.WriteString(h.RawTitle)
	b.WriteString("\n\n")

	for _, f := range h.Fields {
		b.WriteString("\t")
		b.WriteString(f.Name)
		b.WriteString(": ")
		switch {
		case !f.List:
			b.WriteString(f.Value)
		case f.Name == FieldAuthor && len(f.Items) > 0:
			b.WriteString(f.Items[0])
			for _, name := range f.Items[1:] {
				b.WriteString("\n\t\t")
				b.WriteString(name)
			}
		default:
			b.WriteString(strings.Join(f.Items, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatSearch renders entries as a pipe-separated table headed by SearchHeader.
func FormatSearch(entries []*IndexEntry) string {
	var b strings.Builder
	b.WriteString(SearchHeader)
	b.WriteString("\n")

	for _, e := range entries {
		b.WriteString(strings.Join([]string{
			e.Tag(),
			strconv.Itoa(e.Number),
			e.Title,
			strings.Join(e.Authors, ", "),
		}, " | "))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatFeed renders feed items one per line as "date | PEP N | title".
func FormatFeed(items []*FeedItem) string {
	var b strings.Builder
	for _, item := range items {
		date := "----------"
		if !item.Published.IsZero() {
			date = item.Published.Format("2006-01-02")
		}
		b.WriteString(date)
		b.WriteString(" | PEP ")
		b.WriteString(strconv.Itoa(item.Number))
		b.WriteString(" | ")
		b.WriteString(item.Title)
		b.WriteString("\n")
	}
	return b.String()
}

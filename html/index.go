package html

import (
	"strconv"
	"strings"

	"github.com/kevinshome/pepper"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure IndexExtractor implements pepper.IndexExtractor at compile time.
var _ pepper.IndexExtractor = (*IndexExtractor)(nil)

// IndexSectionID is the id of the section holding the canonical PEP listing.
const IndexSectionID = "numerical-index"

// IndexExtractor recovers the numerical index table of the PEP 0 page.
type IndexExtractor struct{}

// NewIndexExtractor creates a new IndexExtractor.
func NewIndexExtractor() *IndexExtractor {
	return &IndexExtractor{}
}

// ExtractIndex walks the tag-stream of page and returns every complete row
// of the numerical index. Tokens outside the index section are ignored.
func (e *IndexExtractor) ExtractIndex(page string) []*pepper.IndexEntry {
	s := &indexState{entries: []*pepper.IndexEntry{}}
	for t := range tokens(page) {
		switch t.Type {
		case html.StartTagToken:
			s.start(t)
		case html.EndTagToken:
			s.end(t)
		case html.TextToken:
			s.text(t.Data)
		}
		if s.done {
			break
		}
	}
	return s.entries
}

// Logical columns of an index row. The type/status cell counts for two.
const (
	columnStart  = 0
	columnNumber = 2
	columnTitle  = 3
	columnAuthor = 4
)

// indexState is the scratch state of a single index parse.
type indexState struct {
	// depth counts open sections inside the index window; zero means outside.
	depth int
	done  bool

	column int
	entry  pepper.IndexEntry

	inCell     bool
	cellAnchor bool
	cellText   strings.Builder

	anchors    int
	anchorText strings.Builder

	entries []*pepper.IndexEntry
}

func (s *indexState) start(t html.Token) {
	if t.DataAtom == atom.Section {
		if s.depth > 0 {
			s.depth++
		} else if id, _ := attr(t, "id"); id == IndexSectionID {
			s.depth = 1
		}
		return
	}
	if s.depth == 0 {
		return
	}

	switch t.DataAtom {
	case atom.Tr:
		s.closeCell()
		s.reset()
	case atom.Td:
		s.closeCell()
		s.inCell = true
		s.cellAnchor = false
		s.cellText.Reset()
	case atom.Abbr:
		s.typeStatus(t)
	case atom.A:
		if s.anchors == 0 {
			s.anchorText.Reset()
		}
		s.anchors++
		s.cellAnchor = true
	}
}

func (s *indexState) end(t html.Token) {
	if s.depth == 0 {
		return
	}

	switch t.DataAtom {
	case atom.Section:
		s.depth--
		if s.depth == 0 {
			s.closeCell()
			s.done = true
		}
	case atom.A:
		if s.anchors == 0 {
			return
		}
		s.anchors--
		if s.anchors == 0 {
			s.anchor(strings.TrimSpace(s.anchorText.String()))
		}
	case atom.Td, atom.Tr, atom.Tbody, atom.Table:
		s.closeCell()
	}
}

// closeCell ends the open cell. Cell end tags are optional, so a new cell,
// a new row or the end of the table closes it as well.
func (s *indexState) closeCell() {
	if s.inCell && !s.cellAnchor && s.column == columnAuthor {
		s.authors(s.cellText.String())
	}
	s.inCell = false
}

func (s *indexState) text(data string) {
	if s.depth == 0 {
		return
	}
	if s.anchors > 0 {
		s.anchorText.WriteString(data)
		return
	}
	if s.inCell {
		s.cellText.WriteString(data)
	}
}

// typeStatus records the type and status of a row from an abbreviation
// titled "<Type>, <Status>". Abbreviations of unknown types are ignored.
func (s *indexState) typeStatus(t html.Token) {
	if s.column != columnStart {
		return
	}
	title, ok := attr(t, "title")
	if !ok {
		return
	}
	name, status, ok := strings.Cut(title, ", ")
	if !ok {
		return
	}
	typ, ok := pepper.ParseType(name)
	if !ok {
		return
	}

	s.entry.Type = typ
	s.entry.Status = pepper.Status(status)
	s.column = columnNumber
}

func (s *indexState) anchor(text string) {
	switch s.column {
	case columnNumber:
		n, err := strconv.Atoi(text)
		if err != nil {
			return
		}
		s.entry.Number = n
		s.column = columnTitle
	case columnTitle:
		if text == "" {
			return
		}
		s.entry.Title = text
		s.column = columnAuthor
	}
}

// authors completes the row. Rows without any author name are dropped.
func (s *indexState) authors(text string) {
	var names []string
	for _, name := range strings.Split(text, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return
	}

	entry := s.entry
	entry.Authors = names
	s.entries = append(s.entries, &entry)
	s.reset()
}

func (s *indexState) reset() {
	s.entry = pepper.IndexEntry{}
	s.column = columnStart
}

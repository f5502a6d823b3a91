package html

import (
	"strings"

	"github.com/kevinshome/pepper"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure HeaderExtractor implements pepper.HeaderExtractor at compile time.
var _ pepper.HeaderExtractor = (*HeaderExtractor)(nil)

// TitleClass is the class of the heading that carries the PEP title.
const TitleClass = "page-title"

// HeaderExtractor recovers the title and the header block of a PEP detail page.
type HeaderExtractor struct{}

// NewHeaderExtractor creates a new HeaderExtractor.
func NewHeaderExtractor() *HeaderExtractor {
	return &HeaderExtractor{}
}

// ExtractHeader walks the tag-stream of page and returns the normalized header.
func (e *HeaderExtractor) ExtractHeader(page string) (*pepper.Header, error) {
	s := newHeaderState()
	for t := range tokens(page) {
		var err error
		switch t.Type {
		case html.StartTagToken:
			s.start(t)
		case html.EndTagToken:
			s.end(t)
		case html.TextToken:
			err = s.text(t.Data)
		}
		if err != nil {
			return nil, err
		}
	}

	if !s.titled {
		return nil, pepper.Errorf(pepper.EMALFORMED, "no %q heading found", TitleClass)
	}
	if err := s.header.Normalize(); err != nil {
		return nil, err
	}
	return s.header, nil
}

// pending says what the next text token means.
type pending int

const (
	pendingNone pending = iota
	pendingTitle
	pendingTerm
	pendingDescription
	pendingAbbr
)

// block tracks the header definition list.
type block int

const (
	blockBefore block = iota
	blockOpen
	blockDone
)

// description is the state of an open dd element. It always belongs to
// the field opened by the preceding dt.
type description struct {
	field int

	// list is set once an anchor opened as the first child of the dd.
	// Every anchor text is then appended to the field until the dd closes.
	list    bool
	anchors int

	// filled is set once text other than a line break followed the dd.
	// An anchor after that text no longer opens a list.
	filled bool
}

// headerState is the scratch state of a single header parse.
type headerState struct {
	header *pepper.Header
	titled bool

	pending pending
	prev    atom.Atom

	block   block
	dlDepth int

	// current is the index of the field opened by the last dt, or -1.
	current int
	desc    *description
}

func newHeaderState() *headerState {
	return &headerState{
		header:  &pepper.Header{},
		current: -1,
	}
}

func (s *headerState) start(t html.Token) {
	prev := s.prev
	s.prev = t.DataAtom
	s.pending = pendingNone

	switch t.DataAtom {
	case atom.H1:
		if !s.titled && hasClass(t, TitleClass) {
			s.pending = pendingTitle
		}
	case atom.Dl:
		switch {
		case s.block == blockOpen:
			s.dlDepth++
		case s.block == blockBefore && s.titled:
			s.block = blockOpen
			s.dlDepth = 1
		}
	case atom.Dt:
		if s.block == blockOpen {
			s.desc = nil
			s.pending = pendingTerm
		}
	case atom.Dd:
		if s.block == blockOpen && s.current >= 0 {
			s.desc = &description{field: s.current}
			s.pending = pendingDescription
		}
	case atom.Abbr:
		if s.desc != nil && !s.desc.list {
			s.pending = pendingAbbr
		}
	case atom.A:
		switch {
		case s.desc == nil:
		case s.desc.list:
			s.desc.anchors++
		case prev == atom.Dd && !s.desc.filled:
			s.desc.list = true
			s.desc.anchors = 1
			f := &s.header.Fields[s.desc.field]
			*f = pepper.Field{Name: f.Name, Items: []string{}, List: true}
		}
	}
}

func (s *headerState) end(t html.Token) {
	s.pending = pendingNone

	switch t.DataAtom {
	case atom.A:
		if s.desc != nil && s.desc.anchors > 0 {
			s.desc.anchors--
		}
	case atom.Dd:
		s.desc = nil
	case atom.Dl:
		if s.block != blockOpen {
			return
		}
		s.dlDepth--
		if s.dlDepth == 0 {
			s.block = blockDone
			s.desc = nil
			s.current = -1
		}
	}
}

func (s *headerState) text(data string) error {
	if d := s.desc; d != nil && d.list {
		if d.anchors > 0 && !isSeparator(data) {
			f := &s.header.Fields[d.field]
			f.Items = append(f.Items, data)
		}
		return nil
	}

	p := s.pending
	s.pending = pendingNone

	switch p {
	case pendingTitle:
		return s.title(data)
	case pendingTerm:
		s.current = s.header.Set(pepper.Field{Name: data})
	case pendingDescription, pendingAbbr:
		f := &s.header.Fields[s.desc.field]
		*f = pepper.Field{Name: f.Name, Value: data}
		if p == pendingDescription && !isSeparator(data) {
			s.desc.filled = true
		}
	}
	return nil
}

// title splits the raw page heading into its designator and title.
func (s *headerState) title(raw string) error {
	s.titled = true

	designator, title, ok := strings.Cut(raw, pepper.TitleSeparator)
	if !ok {
		return pepper.Errorf(pepper.EMALFORMED, "page title %q has no %q separator", raw, pepper.TitleSeparator)
	}
	words := strings.Fields(designator)
	if len(words) < 2 {
		return pepper.Errorf(pepper.EMALFORMED, "page title %q has no PEP number", raw)
	}

	s.header.RawTitle = raw
	s.header.Title = title
	s.header.Number = words[1]
	return nil
}

// isSeparator reports whether data only separates items of a list field.
func isSeparator(data string) bool {
	return data == ",\n" || data == "\n"
}

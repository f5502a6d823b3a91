package pepper

import "strings"

// Header fields with special handling.
const (
	FieldAuthor        = "Author"
	FieldDiscussionsTo = "Discussions-To"
	FieldResolution    = "Resolution"
)

// TitleSeparator separates the PEP designator from the title in a raw title.
const TitleSeparator = " – "

// Header is the metadata recovered from a PEP detail page.
type Header struct {
	// RawTitle is the page heading as published, e.g. "PEP 8 – Style Guide for Python Code".
	RawTitle string

	// Title is the part of RawTitle after the separator.
	Title string

	// Number is the PEP number as written in the heading, without padding.
	Number string

	// Fields holds the header block in source order.
	Fields []Field
}

// Field is a single entry of the header block.
// Scalar fields carry Value; list fields carry Items.
type Field struct {
	Name  string
	Value string
	Items []string
	List  bool
}

// Lookup returns the field called name.
func (h *Header) Lookup(name string) (Field, bool) {
	if i := h.index(name); i >= 0 {
		return h.Fields[i], true
	}
	return Field{}, false
}

// Set stores f, replacing any field with the same name in place.
// New names are appended so that source order is preserved.
// It returns the position of the field.
func (h *Header) Set(f Field) int {
	if i := h.index(f.Name); i >= 0 {
		h.Fields[i] = f
		return i
	}
	h.Fields = append(h.Fields, f)
	return len(h.Fields) - 1
}

// Delete removes the field called name. Missing names are ignored.
func (h *Header) Delete(name string) {
	if i := h.index(name); i >= 0 {
		h.Fields = append(h.Fields[:i], h.Fields[i+1:]...)
	}
}

// Authors returns the author names, or nil if the header has no Author field.
func (h *Header) Authors() []string {
	f, ok := h.Lookup(FieldAuthor)
	if !ok {
		return nil
	}
	return f.Items
}

// Normalize forces the Author field into a list of trimmed names and drops
// the fields pepper never reports. It returns EMALFORMED if there is no
// Author field.
func (h *Header) Normalize() error {
	i := h.index(FieldAuthor)
	if i < 0 {
		return Errorf(EMALFORMED, "PEP %s has no %s field", h.Number, FieldAuthor)
	}

	author := h.Fields[i]
	names := author.Items
	if !author.List {
		names = strings.Split(author.Value, ", ")
	}
	items := make([]string, 0, len(names))
	for _, name := range names {
		items = append(items, strings.TrimSpace(name))
	}
	h.Fields[i] = Field{Name: FieldAuthor, Items: items, List: true}

	h.Delete(FieldDiscussionsTo)
	h.Delete(FieldResolution)
	return nil
}

func (h *Header) index(name string) int {
	for i := range h.Fields {
		if h.Fields[i].Name == name {
			return i
		}
	}
	return -1
}

package pepper

import "strings"

// Type is the kind of a PEP.
type Type string

// Type constants.
const (
	TypeInformational  Type = "Informational"
	TypeProcess        Type = "Process"
	TypeStandardsTrack Type = "Standards Track"
)

// ParseType returns the Type named s and whether it is a known type.
func ParseType(s string) (Type, bool) {
	switch t := Type(s); t {
	case TypeInformational, TypeProcess, TypeStandardsTrack:
		return t, true
	}
	return "", false
}

// Status is the lifecycle state of a PEP.
type Status string

// Status constants as published on the index page.
const (
	StatusAccepted    Status = "Accepted"
	StatusActive      Status = "Active"
	StatusAprilFool   Status = "April Fool!"
	StatusDeferred    Status = "Deferred"
	StatusDraft       Status = "Draft"
	StatusFinal       Status = "Final"
	StatusProvisional Status = "Provisional"
	StatusRejected    Status = "Rejected"
	StatusSuperseded  Status = "Superseded"
	StatusWithdrawn   Status = "Withdrawn"
)

// IndexEntry is one row of the numerical index on the PEP 0 page.
type IndexEntry struct {
	Number  int
	Type    Type
	Status  Status
	Title   string
	Authors []string
}

// Tag returns the two-letter type/status abbreviation, e.g. "SA" for an
// active Standards Track PEP.
func (e *IndexEntry) Tag() string {
	return initial(string(e.Type)) + initial(string(e.Status))
}

// Search returns the entries whose title contains term, ignoring case.
// Entries keep their index order.
func Search(entries []*IndexEntry, term string) []*IndexEntry {
	needle := strings.ToLower(term)

	var matches []*IndexEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), needle) {
			matches = append(matches, e)
		}
	}
	return matches
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// Package pepper provides a command-line lookup tool for Python Enhancement
// Proposals. It fetches PEP pages from peps.python.org, recovers the header
// block and the numerical index from their HTML, and renders the result for
// the terminal.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, http/).
package pepper

import (
	"strings"
)

// Version is the current release of pepper.
const Version = "0.1.0"

// BaseURL is the host serving rendered PEP pages.
const BaseURL = "https://peps.python.org"

// IndexURL returns the URL of the aggregate "PEP 0" index page under base.
func IndexURL(base string) string {
	return DetailURL(base, "0")
}

// FeedURL returns the URL of the RSS feed of recently published PEPs under base.
func FeedURL(base string) string {
	return strings.TrimRight(base, "/") + "/peps.rss"
}

// DetailURL returns the URL of the detail page for the PEP identified by id.
func DetailURL(base, id string) string {
	return strings.TrimRight(base, "/") + "/pep-" + NormalizeNumber(id)
}

// NormalizeNumber left-pads id with zeros to the four digits used in PEP URLs.
// Identifiers already four characters or longer are returned unchanged.
func NormalizeNumber(id string) string {
	if len(id) >= 4 {
		return id
	}
	return strings.Repeat("0", 4-len(id)) + id
}

// Package goquery locates sections of PEP detail pages using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kevinshome/pepper"
)

// Ensure AbstractExtractor implements pepper.AbstractExtractor at compile time.
var _ pepper.AbstractExtractor = (*AbstractExtractor)(nil)

// AbstractSelector matches the Abstract section of a rendered PEP.
const AbstractSelector = "section#abstract"

// AbstractExtractor returns the Abstract section of a PEP detail page.
type AbstractExtractor struct{}

// NewAbstractExtractor creates a new AbstractExtractor.
func NewAbstractExtractor() *AbstractExtractor {
	return &AbstractExtractor{}
}

// ExtractAbstract returns the inner HTML of the first Abstract section with
// its heading and permalink anchors removed.
func (e *AbstractExtractor) ExtractAbstract(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", pepper.Errorf(pepper.EMALFORMED, "failed to parse HTML: %v", err)
	}

	section := doc.Find(AbstractSelector).First()
	if section.Length() == 0 {
		return "", pepper.Errorf(pepper.ENOTFOUND, "page has no abstract")
	}

	section.ChildrenFiltered("h1, h2, h3").First().Remove()
	section.Find("a.headerlink").Remove()

	body, err := section.Html()
	if err != nil {
		return "", pepper.Errorf(pepper.EMALFORMED, "failed to render abstract: %v", err)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", pepper.Errorf(pepper.ENOTFOUND, "page has an empty abstract")
	}
	return body, nil
}

// Package html implements the PEP page extractors on top of the
// golang.org/x/net/html tokenizer. Both extractors are state machines driven
// by a pull-based stream of tokens; neither builds a DOM.
package html

import (
	"iter"
	"strings"

	"golang.org/x/net/html"
)

// tokens yields the tag-stream of page until the end of input.
// Self-closing tags are reported as start tags.
func tokens(page string) iter.Seq[html.Token] {
	return func(yield func(html.Token) bool) {
		z := html.NewTokenizer(strings.NewReader(page))
		for {
			tt := z.Next()
			if tt == html.ErrorToken {
				return
			}
			t := z.Token()
			if t.Type == html.SelfClosingTagToken {
				t.Type = html.StartTagToken
			}
			if !yield(t) {
				return
			}
		}
	}
}

// attr returns the value of the attribute key on t.
func attr(t html.Token, key string) (string, bool) {
	for _, a := range t.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// hasClass reports whether t lists class among its classes.
func hasClass(t html.Token, class string) bool {
	v, ok := attr(t, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

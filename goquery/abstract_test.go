package goquery_test

import (
	"testing"

	"github.com/kevinshome/pepper"
	"github.com/kevinshome/pepper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbstractExtractor_ExtractAbstract(t *testing.T) {
	t.Parallel()

	t.Run("returns abstract body without heading", func(t *testing.T) {
		t.Parallel()

		page := `<!DOCTYPE html>
<html><body>
<article>
<h1 class="page-title">PEP 484 – Type Hints</h1>
<section id="abstract">
<h2><a class="toc-backref" href="#abstract" role="doc-backlink">Abstract</a><a class="headerlink" href="#abstract" title="Link to this heading">¶</a></h2>
<p><a class="pep reference internal" href="../pep-3107/" title="PEP 3107 – Function Annotations">PEP 3107</a> introduced syntax for function annotations.</p>
<p>This PEP aims to provide a standard syntax for type annotations.</p>
</section>
<section id="rationale-and-goals">
<h2>Rationale and Goals</h2>
<p>Not part of the abstract.</p>
</section>
</article>
</body></html>`

		body, err := goquery.NewAbstractExtractor().ExtractAbstract(page)

		require.NoError(t, err)
		assert.Contains(t, body, "introduced syntax for function annotations")
		assert.Contains(t, body, "standard syntax for type annotations")
		assert.NotContains(t, body, "<h2>")
		assert.NotContains(t, body, "¶")
		assert.NotContains(t, body, "Not part of the abstract")
	})

	t.Run("keeps permalink-free inner links", func(t *testing.T) {
		t.Parallel()

		page := `<section id="abstract"><h2>Abstract</h2><p>See <a href="../pep-0008/">PEP 8</a>.</p></section>`

		body, err := goquery.NewAbstractExtractor().ExtractAbstract(page)

		require.NoError(t, err)
		assert.Contains(t, body, `href="../pep-0008/"`)
	})

	t.Run("returns not found when page has no abstract", func(t *testing.T) {
		t.Parallel()

		page := `<section id="introduction"><h2>Introduction</h2><p>Text.</p></section>`

		_, err := goquery.NewAbstractExtractor().ExtractAbstract(page)

		require.Error(t, err)
		assert.Equal(t, pepper.ENOTFOUND, pepper.ErrorCode(err))
	})

	t.Run("returns not found for empty abstract", func(t *testing.T) {
		t.Parallel()

		page := `<section id="abstract"><h2>Abstract</h2>
</section>`

		_, err := goquery.NewAbstractExtractor().ExtractAbstract(page)

		require.Error(t, err)
		assert.Equal(t, pepper.ENOTFOUND, pepper.ErrorCode(err))
	})
}

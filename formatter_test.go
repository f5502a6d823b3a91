package pepper_test

import (
	"testing"
	"time"

	"github.com/kevinshome/pepper"
	"github.com/stretchr/testify/assert"
)

func TestFormatHeader(t *testing.T) {
	t.Parallel()

	t.Run("renders title and author continuation lines", func(t *testing.T) {
		t.Parallel()

		h := &pepper.Header{
			RawTitle: "PEP 8 – Style Guide for Python Code",
			Fields: []pepper.Field{
				{Name: "Author", Items: []string{"Guido van Rossum", "Barry Warsaw"}, List: true},
			},
		}

		result := pepper.FormatHeader(h)

		expected := "PEP 8 – Style Guide for Python Code\n\n\tAuthor: Guido van Rossum\n\t\tBarry Warsaw\n"
		assert.Equal(t, expected, result)
	})

	t.Run("renders scalar fields as key and value", func(t *testing.T) {
		t.Parallel()

		h := &pepper.Header{
			RawTitle: "PEP 20 – The Zen of Python",
			Fields: []pepper.Field{
				{Name: "Author", Items: []string{"Tim Peters"}, List: true},
				{Name: "Status", Value: "Active"},
				{Name: "Created", Value: "19-Aug-2004"},
			},
		}

		result := pepper.FormatHeader(h)

		expected := "PEP 20 – The Zen of Python\n\n\tAuthor: Tim Peters\n\tStatus: Active\n\tCreated: 19-Aug-2004\n"
		assert.Equal(t, expected, result)
	})

	t.Run("joins other list fields with commas", func(t *testing.T) {
		t.Parallel()

		h := &pepper.Header{
			RawTitle: "PEP 8 – Style Guide for Python Code",
			Fields: []pepper.Field{
				{Name: "Post-History", Items: []string{"05-Jul-2001", "01-Aug-2013"}, List: true},
			},
		}

		result := pepper.FormatHeader(h)

		assert.Contains(t, result, "\tPost-History: 05-Jul-2001, 01-Aug-2013\n")
	})
}

func TestFormatSearch(t *testing.T) {
	t.Parallel()

	t.Run("renders header row and tagged entries", func(t *testing.T) {
		t.Parallel()

		entries := []*pepper.IndexEntry{
			{
				Number:  8,
				Type:    pepper.TypeStandardsTrack,
				Status:  pepper.StatusActive,
				Title:   "Style Guide for Python Code",
				Authors: []string{"Guido van Rossum"},
			},
		}

		result := pepper.FormatSearch(entries)

		expected := "Status/Type | PEP | Title | Authors\nSA | 8 | Style Guide for Python Code | Guido van Rossum\n"
		assert.Equal(t, expected, result)
	})

	t.Run("joins multiple authors", func(t *testing.T) {
		t.Parallel()

		entries := []*pepper.IndexEntry{
			{
				Number:  1,
				Type:    pepper.TypeProcess,
				Status:  pepper.StatusActive,
				Title:   "PEP Purpose and Guidelines",
				Authors: []string{"Barry Warsaw", "Jeremy Hylton"},
			},
		}

		result := pepper.FormatSearch(entries)

		assert.Contains(t, result, "PA | 1 | PEP Purpose and Guidelines | Barry Warsaw, Jeremy Hylton\n")
	})

	t.Run("renders only the header for no entries", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, pepper.SearchHeader+"\n", pepper.FormatSearch(nil))
	})
}

func TestFormatFeed(t *testing.T) {
	t.Parallel()

	items := []*pepper.FeedItem{
		{Number: 789, Title: "Preventing task-cancellation bugs", Published: time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)},
		{Number: 790, Title: "Undated"},
	}

	result := pepper.FormatFeed(items)

	expected := "2024-05-14 | PEP 789 | Preventing task-cancellation bugs\n---------- | PEP 790 | Undated\n"
	assert.Equal(t, expected, result)
}

package librarian_test

import (
	"testing"

	"github.com/learnsearch/librarian"
	"github.com/stretchr/testify/assert"
)

func TestSection_HeaderLevel(t *testing.T) {
	t.Parallel()

	s := librarian.Section{Headings: []string{"Title", "Goals"}}

	assert.Equal(t, 2, s.HeaderLevel())
}

func TestSection_NextSection(t *testing.T) {
	t.Parallel()

	t.Run("deeper level appends to the path", func(t *testing.T) {
		t.Parallel()

		s := librarian.Section{Headings: []string{"Title", "Goals"}}

		next := s.NextSection(3, "Details", "https://example.com/page.html#details")

		assert.Equal(t, []string{"Title", "Goals", "Details"}, next.Headings)
		assert.Equal(t, "https://example.com/page.html#details", next.URL)
		assert.Empty(t, next.Content)
	})

	t.Run("same level replaces the last heading", func(t *testing.T) {
		t.Parallel()

		s := librarian.Section{Headings: []string{"Title", "Goals"}}

		next := s.NextSection(2, "Exercises", "https://example.com/page.html#exercises")

		assert.Equal(t, []string{"Title", "Exercises"}, next.Headings)
	})

	t.Run("shallower level truncates the path", func(t *testing.T) {
		t.Parallel()

		s := librarian.Section{Headings: []string{"A", "B", "C", "D", "E"}}

		next := s.NextSection(3, "F", "")

		assert.Equal(t, []string{"A", "B", "F"}, next.Headings)
	})

	t.Run("skipped levels keep the existing path", func(t *testing.T) {
		t.Parallel()

		// An h4 directly under an h2 appends rather than padding the
		// gap, so the path depth tracks what the document actually has.
		s := librarian.Section{Headings: []string{"Title", "Goals"}}

		next := s.NextSection(4, "Fine Print", "")

		assert.Equal(t, []string{"Title", "Goals", "Fine Print"}, next.Headings)
	})
}

func TestSection_ContainsHeading(t *testing.T) {
	t.Parallel()

	s := librarian.Section{Headings: []string{"Title", "Authors"}}

	assert.True(t, s.ContainsHeading("authors"))
	assert.True(t, s.ContainsHeading("Title"))
	assert.False(t, s.ContainsHeading("Keywords"))
}

package goquery_test

import (
	"testing"

	"github.com/learnsearch/librarian"
	"github.com/learnsearch/librarian/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure NbcollectionReducer implements librarian.PageReducer at compile time.
var _ librarian.PageReducer = (*goquery.NbcollectionReducer)(nil)

const nbcollectionTutorialHTML = `<!DOCTYPE html>
<html>
<body>
<div class="jp-Notebook">
	<div class="jp-Cell jp-MarkdownCell"><div class="jp-RenderedHTMLCommon">
		<h1 id="plot-a-spectrum">Plot a Spectrum</h1>
		<h2 id="authors">Authors</h2>
		<p>Jane Doe, John Smith</p>
		<h2 id="summary">Summary</h2>
		<p>This tutorial plots a spectrum.</p>
		<h2 id="loading-data">Loading Data</h2>
		<p>First, load the data.</p>
	</div></div>
	<div class="jp-Cell jp-CodeCell">
		<div class="jp-InputArea"><div class="jp-InputArea-editor">data = load()</div></div>
		<div class="jp-OutputArea">array([1, 2])</div>
	</div>
	<div class="jp-Cell jp-MarkdownCell"><div class="jp-RenderedHTMLCommon">
		<h2 id="plotting">Plotting</h2>
		<p>Now plot it.</p>
		<img src="spectrum.png">
	</div></div>
</div>
</body>
</html>`

func TestNbcollectionReducer_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nbcollection", goquery.NewNbcollectionReducer().Name())
}

func TestNbcollectionReducer_Reduce(t *testing.T) {
	t.Parallel()

	t.Run("reduces a notebook page into metadata and sections", func(t *testing.T) {
		t.Parallel()

		page := &librarian.HtmlPage{
			HTML: nbcollectionTutorialHTML,
			URL:  "https://example.com/notebooks/spectrum.html",
		}

		reduced, err := goquery.NewNbcollectionReducer().Reduce(page)

		require.NoError(t, err)
		assert.Equal(t, "Plot a Spectrum", reduced.Title)
		assert.Equal(t, []string{"Jane Doe", "John Smith"}, reduced.Authors)
		assert.Equal(t, "This tutorial plots a spectrum.", reduced.Summary)
		assert.Equal(t, []string{"https://example.com/notebooks/spectrum.png"}, reduced.Images)

		// The authors and summary sections are dropped; loading-data and
		// plotting remain. The flat sectionizer never emits a standalone
		// h1 section here because the title heading has no content of its
		// own before the first h2.
		require.Len(t, reduced.Sections, 2)

		assert.Equal(t, []string{"Plot a Spectrum", "Loading Data"}, reduced.Sections[0].Headings)
		assert.Equal(t, "First, load the data. data = load()", reduced.Sections[0].Content)
		assert.Equal(t, "https://example.com/notebooks/spectrum.html#loading-data", reduced.Sections[0].URL)

		assert.Equal(t, []string{"Plot a Spectrum", "Plotting"}, reduced.Sections[1].Headings)
		assert.Equal(t, "Now plot it.", reduced.Sections[1].Content)
	})

	t.Run("fails with EINVALID when the page has no notebook container", func(t *testing.T) {
		t.Parallel()

		page := &librarian.HtmlPage{
			HTML: "<html><body><p>Not a notebook.</p></body></html>",
			URL:  "https://example.com/empty.html",
		}

		_, err := goquery.NewNbcollectionReducer().Reduce(page)

		require.Error(t, err)
		assert.Equal(t, librarian.EINVALID, librarian.ErrorCode(err))
	})
}

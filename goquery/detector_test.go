package goquery_test

import (
	"testing"

	"github.com/learnsearch/librarian"
	"github.com/learnsearch/librarian/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	d := goquery.NewDetector()

	tests := []struct {
		name string
		html string
		want librarian.Generator
	}{
		{
			name: "jupyterbook page via site title and main content markers",
			html: `<html><body>
				<h1 id="site-title">Learn Astronomy</h1>
				<div id="main-content"><section id="intro"><h1>Intro</h1></section></div>
			</body></html>`,
			want: librarian.GeneratorJupyterBook,
		},
		{
			name: "jupyterbook wins over embedded notebook cells",
			html: `<html><body>
				<h1 id="site-title">Book</h1>
				<div id="main-content"><div class="jp-Notebook"></div></div>
			</body></html>`,
			want: librarian.GeneratorJupyterBook,
		},
		{
			name: "nbcollection page via notebook container",
			html: `<html><body><div class="jp-Notebook"></div></body></html>`,
			want: librarian.GeneratorNbcollection,
		},
		{
			name: "sphinx page via generator meta tag",
			html: `<html><head><meta name="generator" content="Sphinx 4.2.0"></head><body></body></html>`,
			want: librarian.GeneratorSphinx,
		},
		{
			name: "sphinx page via legacy section wrappers",
			html: `<html><body><div class="section" id="a"><h1>A</h1></div></body></html>`,
			want: librarian.GeneratorSphinx,
		},
		{
			name: "unrecognized page",
			html: `<html><body><p>Plain page.</p></body></html>`,
			want: librarian.GeneratorUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.Detect(tt.html))
		})
	}
}

// Package crawl orchestrates the indexing workflows: it coordinates page
// downloads, reduction into sections, record building, and the search index
// store.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/learnsearch/librarian"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel page downloads when none is configured.
const DefaultConcurrency = 10

// Indexer runs the indexing workflows.
type Indexer struct {
	Fetcher     librarian.Fetcher
	Reducers    librarian.ReducerRegistry
	Redirects   librarian.RedirectDetector
	Books       librarian.BookMetadataService
	Keywords    librarian.KeywordClassifier
	Index       librarian.IndexService
	Sitemaps    librarian.SitemapService
	RateLimiter librarian.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// Result holds the outcome of one indexing run.
type Result struct {
	// Root URL the run was recorded under.
	RootURL string

	// Epoch token of the run.
	IndexEpoch string

	// Number of records saved.
	Saved int

	// Number of pages that could not be indexed.
	Failed int

	// Object IDs of stale records removed at the end of the run.
	Expired []string
}

// IndexTutorial downloads a tutorial page, reduces it and saves its section
// records, then expires records of the page left over from earlier runs.
func (ix *Indexer) IndexTutorial(ctx context.Context, tutorialURL string, priority int) (*Result, error) {
	page, err := ix.fetch(ctx, tutorialURL)
	if err != nil {
		return nil, err
	}

	reducer := ix.Reducers.GetForHTML(page.HTML)
	reduced, err := reducer.Reduce(page)
	if err != nil {
		return nil, err
	}

	keywords, err := ix.classify(reduced.Keywords)
	if err != nil {
		return nil, err
	}

	epoch := librarian.NewIndexEpoch()
	records := sectionRecords(reduced.Sections, librarian.RecordMeta{
		ContentType:  librarian.ContentTypeTutorial,
		RootURL:      page.URL,
		RootTitle:    reduced.Title,
		IndexEpoch:   epoch,
		Priority:     priority,
		ThumbnailURL: reduced.Thumbnail(),
		Keywords:     keywords,
	})

	if err := ix.Index.SaveRecords(ctx, records); err != nil {
		return nil, err
	}
	expired, err := ix.Index.ExpireRecords(ctx, page.URL, epoch)
	if err != nil {
		return nil, err
	}

	return &Result{
		RootURL:    page.URL,
		IndexEpoch: epoch,
		Saved:      len(records),
		Expired:    expired,
	}, nil
}

// IndexJupyterBook indexes every content page of a JupyterBook site. The
// homepage provides book-level metadata and the page listing; page downloads
// fan out bounded by Concurrency, and a failing page is counted and skipped
// without aborting the run. Stale records of the book are expired at the
// end, unless every page failed.
func (ix *Indexer) IndexJupyterBook(ctx context.Context, rootURL string, priority int) (*Result, error) {
	homepage, err := ix.fetch(ctx, rootURL)
	if err != nil {
		return nil, err
	}

	// Books often move: the advertised root URL may serve only a
	// client-side redirect stub. A stub we cannot parse is treated as a
	// regular homepage.
	if ix.Redirects != nil {
		if target, err := ix.Redirects.DetectRedirect(homepage.HTML, homepage.URL); err == nil && target != "" {
			homepage, err = ix.fetch(ctx, target)
			if err != nil {
				return nil, err
			}
		}
	}

	meta, err := ix.Books.Metadata(homepage)
	if err != nil {
		return nil, err
	}
	meta.Priority = priority
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	pageURLs := meta.PageURLs
	if len(pageURLs) == 0 && ix.Sitemaps != nil {
		pageURLs, err = ix.Sitemaps.DiscoverURLs(ctx, meta.RootURL, nil)
		if err != nil {
			return nil, err
		}
	}

	frontier := NewFrontier(uint(len(pageURLs))+1, 0.001)
	for _, u := range pageURLs {
		frontier.Push(u)
	}

	epoch := librarian.NewIndexEpoch()

	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var saved atomic.Int64
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for {
		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		g.Go(func() error {
			n, err := ix.indexBookPage(gctx, pageURL, meta, epoch)
			if err != nil {
				failed.Add(1)
				ix.logf("page failed %s: %v", pageURL, err)
				return nil
			}
			saved.Add(int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{
		RootURL:    meta.RootURL,
		IndexEpoch: epoch,
		Saved:      int(saved.Load()),
		Failed:     int(failed.Load()),
	}

	// Expiring after a fully failed run would wipe the book's records.
	if result.Saved > 0 {
		result.Expired, err = ix.Index.ExpireRecords(ctx, meta.RootURL, epoch)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// DeleteRootURL removes every record belonging to a root URL and returns
// the deleted object IDs.
func (ix *Indexer) DeleteRootURL(ctx context.Context, rootURL string) ([]string, error) {
	return ix.Index.DeleteByRootURL(ctx, rootURL)
}

// indexBookPage downloads and reduces one book page and saves its records,
// returning the number of records saved.
func (ix *Indexer) indexBookPage(ctx context.Context, pageURL string, meta *librarian.JupyterBookMetadata, epoch string) (int, error) {
	page, err := ix.fetch(ctx, pageURL)
	if err != nil {
		return 0, err
	}

	reducer := ix.Reducers.GetForHTML(page.HTML)
	reduced, err := reducer.Reduce(page)
	if err != nil {
		return 0, err
	}

	keywords, err := ix.classify(reduced.Keywords)
	if err != nil {
		return 0, err
	}

	thumbnail := reduced.Thumbnail()
	if thumbnail == "" {
		thumbnail = meta.LogoURL
	}

	records := sectionRecords(reduced.Sections, librarian.RecordMeta{
		ContentType:  librarian.ContentTypeGuide,
		RootURL:      meta.RootURL,
		RootTitle:    meta.Title,
		IndexEpoch:   epoch,
		Priority:     meta.Priority,
		ThumbnailURL: thumbnail,
		Keywords:     keywords,
	})
	if len(records) == 0 {
		return 0, nil
	}

	if err := ix.Index.SaveRecords(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// fetch downloads a page with rate limiting and retry.
func (ix *Indexer) fetch(ctx context.Context, pageURL string) (*librarian.HtmlPage, error) {
	if ix.RateLimiter != nil {
		if err := ix.RateLimiter.Wait(ctx, domainOf(pageURL)); err != nil {
			return nil, err
		}
	}
	delays := ix.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, ix.Fetcher, pageURL, ix.Logger, delays)
}

func (ix *Indexer) classify(keywords []string) (map[string][]string, error) {
	if ix.Keywords == nil || len(keywords) == 0 {
		return nil, nil
	}
	return librarian.ClassifyKeywords(ix.Keywords, keywords)
}

func (ix *Indexer) logf(format string, args ...any) {
	if ix.Logger != nil {
		ix.Logger(format, args...)
	}
}

// sectionRecords builds one index record per section. Sections whose record
// would fail validation (e.g. no heading path) are skipped.
func sectionRecords(sections []librarian.Section, meta librarian.RecordMeta) []*librarian.Record {
	var records []*librarian.Record
	for _, section := range sections {
		rec := librarian.NewSectionRecord(section, meta)
		if err := rec.Validate(); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Hostname()
}

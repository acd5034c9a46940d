package sources

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/coho/internal/meta"
)

// Scraper is the boundary to a per-site metadata parser. Implementations
// live outside this module except for the reference MusicBrainz adapter;
// they must fill every field they can and leave the rest zero.
type Scraper interface {
	// Name returns the source name as used by the preference order.
	Name() string
	// Match reports whether this scraper owns the given release URL.
	Match(url string) bool
	// Scrape fetches and parses one release.
	Scrape(ctx context.Context, url string) (*meta.Release, error)
}

// Fetch scrapes every URL with every scraper that claims it, concurrently,
// and returns the finished records once all scrapes have completed. The
// combiner never sees partial results.
//
// A failing scrape does not abort the others: its error is collected and
// the remaining records are still returned, joined with the errors so the
// caller can decide whether a partial result is enough.
func Fetch(ctx context.Context, scrapers []Scraper, urls []string, opts Options) ([]Record, error) {
	var (
		mu      sync.Mutex
		records []Record
		errs    []error
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, s := range scrapers {
		for _, url := range urls {
			if !s.Match(url) {
				continue
			}
			g.Go(func() error {
				release, err := s.Scrape(ctx, url)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %s: %w", s.Name(), url, err))
					return nil
				}
				records = append(records, Record{
					Source:  s.Name(),
					Release: Finalize(release, opts),
				})
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}
	return records, errors.Join(errs...)
}

// coho combines music release metadata from multiple sources into a single
// clean record: scrape each URL, normalize every record, fold them together
// in source-preference order and print the result.
//
// Usage:
//
//	coho [-dir ALBUM_FOLDER] URL [URL...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/llehouerou/coho/internal/cache"
	"github.com/llehouerou/coho/internal/combine"
	"github.com/llehouerou/coho/internal/config"
	"github.com/llehouerou/coho/internal/genres"
	"github.com/llehouerou/coho/internal/meta"
	"github.com/llehouerou/coho/internal/render"
	"github.com/llehouerou/coho/internal/sources"
	"github.com/llehouerou/coho/internal/sources/musicbrainz"
	"github.com/llehouerou/coho/internal/tagsource"
)

func main() {
	dir := flag.String("dir", "", "album folder to seed the base record from its audio tags")
	noCache := flag.Bool("no-cache", false, "bypass the scrape cache")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] URL [URL...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 && *dir == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*dir, flag.Args(), *noCache); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string, urls []string, noCache bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var base *meta.Release
	if dir != "" {
		base, err = tagsource.FromDir(dir)
		if err != nil {
			return err
		}
	}

	scrapers := []sources.Scraper{musicbrainz.NewClient()}
	if !noCache {
		store, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: scrape cache unavailable: %v\n", err)
		} else {
			defer store.Close()
			if n, err := store.Prune(cfg.Cache.CacheTTL()); err == nil && n > 0 {
				fmt.Fprintf(os.Stderr, "Pruned %d stale cache entries\n", n)
			}
			for i, s := range scrapers {
				scrapers[i] = &cachedScraper{inner: s, store: store, ttl: cfg.Cache.CacheTTL()}
			}
		}
	}

	opts := sources.Options{
		VariousArtistThreshold: cfg.Tagger.VariousArtistThreshold,
		BlacklistedGenres:      cfg.Tagger.BlacklistedGenres,
		StripUselessVersions:   cfg.Tagger.StripUselessVersionsOrDefault(),
	}

	records, err := sources.Fetch(ctx, scrapers, urls, opts)
	if err != nil {
		// Partial results are still usable; report what failed and go on.
		fmt.Fprintf(os.Stderr, "Warning: some scrapes failed:\n%v\n", err)
	}

	// The first URL names the source whose values win ties.
	var sourceURL string
	if len(urls) > 0 {
		sourceURL = urls[0]
	}

	release, err := combine.Metadata(records, base, sourceURL)
	if err != nil {
		if errors.Is(err, combine.ErrNoMetadata) {
			return errors.New("nothing to combine: no URL was scraped successfully and no album folder was given")
		}
		return err
	}
	release.Genres = genres.FixHardcore(release.Genres)

	fmt.Print(render.Release(release))
	return nil
}

// cachedScraper serves scrapes from the local store when a fresh entry
// exists, and stores every successful scrape.
type cachedScraper struct {
	inner sources.Scraper
	store *cache.Cache
	ttl   time.Duration
}

func (c *cachedScraper) Name() string          { return c.inner.Name() }
func (c *cachedScraper) Match(url string) bool { return c.inner.Match(url) }

func (c *cachedScraper) Scrape(ctx context.Context, url string) (*meta.Release, error) {
	if release, ok, err := c.store.Get(c.inner.Name(), url, c.ttl); err == nil && ok {
		return release, nil
	}
	release, err := c.inner.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := c.store.Put(c.inner.Name(), url, release); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
	}
	return release, nil
}

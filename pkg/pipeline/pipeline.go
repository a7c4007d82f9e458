// Package pipeline runs feed generation: artists from the registry, releases from
// each artist page, one feed file with all of them.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/umputun/bandfeed/pkg/domain"
)

//go:generate moq -out mocks/registry.go -pkg mocks -skip-ensure -fmt goimports . Registry
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/feed_writer.go -pkg mocks -skip-ensure -fmt goimports . FeedWriter

// ErrEmptyArtist returned by AddArtist for blank input
var ErrEmptyArtist = errors.New("empty artist url")

// Registry provides followed artists
type Registry interface {
	Load() ([]string, error)
	Add(artistURL string) (bool, error)
}

// Extractor returns releases visible on an artist page, never fails the run
type Extractor interface {
	Extract(ctx context.Context, artistURL string) []domain.Release
}

// FeedWriter renders releases into the feed file
type FeedWriter interface {
	Write(path string, releases []domain.Release) error
}

// Result summarizes a generation run
type Result struct {
	Artists  int
	Releases int
	Path     string
}

// Runner coordinates registry, extractor and feed writer
type Runner struct {
	registry  Registry
	extractor Extractor
	writer    FeedWriter
	feedPath  string
}

// New creates a runner writing the feed to feedPath
func New(reg Registry, ext Extractor, out FeedWriter, feedPath string) *Runner {
	return &Runner{registry: reg, extractor: ext, writer: out, feedPath: feedPath}
}

// Generate fetches releases of all registered artists, one artist at a time and in
// registry order, and writes them to the feed. The feed is written even if nothing was found.
func (r *Runner) Generate(ctx context.Context) (Result, error) {
	artists, err := r.registry.Load()
	if err != nil {
		return Result{}, fmt.Errorf("load artists: %w", err)
	}

	if len(artists) == 0 {
		log.Print("[WARN] no artists found in the list")
	} else {
		log.Printf("[INFO] loaded %d artists", len(artists))
	}

	releases := []domain.Release{}
	for _, artist := range artists {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("generation interrupted: %w", err)
		}

		log.Printf("[INFO] fetching releases for artist: %s", artist)
		found := r.extractor.Extract(ctx, artist)
		if len(found) == 0 {
			log.Printf("[INFO] no releases found for %s", artist)
			continue
		}
		releases = append(releases, found...)
	}

	// cancellation during the last fetch leaves releases incomplete, keep the previous feed
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("generation interrupted: %w", err)
	}

	if err := r.writer.Write(r.feedPath, releases); err != nil {
		return Result{}, fmt.Errorf("write feed: %w", err)
	}

	log.Printf("[INFO] RSS feed generated: %s, %d releases", r.feedPath, len(releases))
	return Result{Artists: len(artists), Releases: len(releases), Path: r.feedPath}, nil
}

// AddArtist registers an artist page, returns false if it was already registered
func (r *Runner) AddArtist(artistURL string) (bool, error) {
	artistURL = strings.TrimSpace(artistURL)
	if artistURL == "" {
		return false, ErrEmptyArtist
	}

	added, err := r.registry.Add(artistURL)
	if err != nil {
		return false, fmt.Errorf("add artist %s: %w", artistURL, err)
	}

	if added {
		log.Printf("[INFO] added new artist: %s", artistURL)
	} else {
		log.Printf("[INFO] artist already in list: %s", artistURL)
	}
	return added, nil
}

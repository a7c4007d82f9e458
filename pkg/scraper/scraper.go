// Package scraper extracts releases from Bandcamp artist pages.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/umputun/bandfeed/pkg/domain"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

	// titleSelector lists known title markers inside a candidate element
	titleSelector = ".heading, .title, .track-title"
)

// Options for Scraper, zero values replaced by defaults
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Strategies []Strategy
}

// Scraper fetches artist pages and extracts visible releases
type Scraper struct {
	client     *http.Client
	userAgent  string
	strategies []Strategy
}

// New creates a scraper
func New(opts Options) *Scraper {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if len(opts.Strategies) == 0 {
		opts.Strategies = DefaultStrategies()
	}

	return &Scraper{
		client:     &http.Client{Timeout: opts.Timeout},
		userAgent:  opts.UserAgent,
		strategies: opts.Strategies,
	}
}

// Extract fetches the artist page and returns its releases in page order.
// Fetch failures are logged and result in an empty list, they never stop the caller.
func (s *Scraper) Extract(ctx context.Context, artistURL string) []domain.Release {
	body, err := s.fetch(ctx, artistURL)
	if err != nil {
		log.Printf("[WARN] failed to fetch %s: %v", artistURL, err)
		return []domain.Release{}
	}
	defer body.Close()

	releases, skipped, err := s.Parse(body, artistURL)
	if err != nil {
		log.Printf("[WARN] failed to parse %s: %v", artistURL, err)
		return []domain.Release{}
	}

	log.Printf("[DEBUG] extracted %d releases from %s, skipped %d", len(releases), artistURL, skipped)
	return releases
}

// Parse extracts releases from the artist page markup.
// Candidates without a title or a link are skipped with a warning, the count of
// skipped candidates is returned along with the releases.
func (s *Scraper) Parse(r io.Reader, artistURL string) (releases []domain.Release, skipped int, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("parse html: %w", err)
	}

	releases = []domain.Release{}
	for _, item := range candidates(doc, s.strategies) {
		rel, ok := release(item, artistURL)
		if !ok {
			log.Printf("[WARN] skipping an item due to missing elements on %s", artistURL)
			skipped++
			continue
		}
		releases = append(releases, rel)
	}
	return releases, skipped, nil
}

// release builds a release from a single candidate element
func release(item *goquery.Selection, artistURL string) (domain.Release, bool) {
	titleElem := item.Find(titleSelector).First()
	if titleElem.Length() == 0 {
		return domain.Release{}, false
	}
	title := strings.TrimSpace(titleElem.Text())
	if title == "" {
		return domain.Release{}, false
	}

	href, ok := item.Find("a").First().Attr("href")
	if !ok {
		return domain.Release{}, false
	}

	return domain.Release{
		Title:  title,
		Link:   normalizeLink(artistURL, href),
		Image:  imageSource(item),
		Artist: artistURL,
	}, true
}

// normalizeLink keeps absolute links and appends relative ones to the artist URL as is.
// No URL joining is done, "https://a.bandcamp.com/" + "/album/x" keeps the double slash.
func normalizeLink(artistURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return artistURL + href
}

// imageSource returns cover art of the first image, lazy loaded grids keep it in data-original
func imageSource(item *goquery.Selection) string {
	img := item.Find("img").First()
	if img.Length() == 0 {
		return ""
	}
	if src, ok := img.Attr("src"); ok {
		return src
	}
	return img.AttrOr("data-original", "")
}

// fetch retrieves the artist page
func (s *Scraper) fetch(ctx context.Context, artistURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, artistURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	addBrowserHeaders(req, s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

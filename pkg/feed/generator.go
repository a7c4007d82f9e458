// Package feed assembles and writes the releases RSS feed.
package feed

import (
	"encoding/xml"
	"fmt"
	"html"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/bandfeed/pkg/domain"
)

// emptyImage is the description of a release without usable cover art
const emptyImage = `<img src=""/>`

// Generator creates RSS feeds from releases
type Generator struct {
	meta   domain.FeedMeta
	policy *bluemonday.Policy
	now    func() time.Time
}

// NewGenerator creates a new feed generator with fixed channel metadata
func NewGenerator(meta domain.FeedMeta) *Generator {
	return &Generator{
		meta:   meta,
		policy: bluemonday.UGCPolicy(),
		now:    time.Now,
	}
}

// Assemble builds the feed document, one item per release in the given order
func (g *Generator) Assemble(releases []domain.Release) *RSS {
	items := make([]*RSSItem, 0, len(releases))
	for _, r := range releases {
		items = append(items, &RSSItem{
			Title:       r.Title,
			Link:        r.Link,
			Description: g.description(r),
		})
	}

	return &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         g.meta.Title,
			Link:          g.meta.Link,
			Description:   g.meta.Description,
			AtomLink:      &AtomLink{Href: g.meta.Link, Rel: "self", Type: "application/rss+xml"},
			Generator:     "bandfeed",
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         items,
		},
	}
}

// Render marshals the feed document to XML with declaration
func (g *Generator) Render(rss *RSS) (string, error) {
	output, err := xml.MarshalIndent(rss, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// Write assembles the feed and replaces the file at path
func (g *Generator) Write(path string, releases []domain.Release) error {
	rss, err := g.Render(g.Assemble(releases))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create feed dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp feed file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after successful rename

	if _, err := tmp.WriteString(rss); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write feed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close feed: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // feed is public
		return fmt.Errorf("chmod feed: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace feed %s: %w", path, err)
	}
	return nil
}

// description embeds cover art as an img tag. Image URLs come from a third party page,
// they are percent-encoded first and anything the sanitizer strips (e.g. javascript: scheme)
// is replaced by an empty src.
func (g *Generator) description(r domain.Release) string {
	if !r.HasImage() {
		return emptyImage
	}
	u, err := url.Parse(r.Image)
	if err != nil {
		log.Printf("[DEBUG] dropping image %q of %s: %v", r.Image, r.Link, err)
		return emptyImage
	}
	clean := g.policy.Sanitize(fmt.Sprintf(`<img src="%s"/>`, html.EscapeString(u.String())))
	if !strings.Contains(clean, "src=") {
		log.Printf("[DEBUG] dropping image %q of %s, rejected by sanitizer", r.Image, r.Link)
		return emptyImage
	}
	return clean
}

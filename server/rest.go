package server

import (
	"log"
	"net/http"
	"time"

	"github.com/umputun/bandfeed/pkg/feed"
)

// feedStatus describes the generated feed file
type feedStatus struct {
	Path      string     `json:"path"`
	Available bool       `json:"available"`
	Title     string     `json:"title,omitempty"`
	Releases  int        `json:"releases"`
	Updated   *time.Time `json:"updated,omitempty"`
}

// statusHandler returns server status along with the state of the feed file
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	fs := feedStatus{Path: s.config.GetFeedPath()}
	if parsed, err := feed.Read(fs.Path); err == nil {
		fs.Available = true
		fs.Title = parsed.Title
		fs.Releases = len(parsed.Items)
		fs.Updated = parsed.UpdatedParsed
	} else {
		log.Printf("[DEBUG] feed is not available: %v", err)
	}

	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"feed":    fs,
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// artistsHandler returns followed artists in registry order
func (s *Server) artistsHandler(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.Load()
	if err != nil {
		log.Printf("[ERROR] failed to load artists: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"artists": artists, "count": len(artists)})
}

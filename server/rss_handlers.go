package server

import (
	"errors"
	"log"
	"net/http"
	"os"
)

// rssHandler serves the last generated feed file as is
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.config.GetFeedPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "Feed is not generated yet", http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to read RSS feed: %v", err)
		http.Error(w, "Failed to read RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

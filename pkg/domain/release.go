package domain

// Release represents a single album or track listed on an artist page
type Release struct {
	Title  string // trimmed text of the title element, never empty
	Link   string // absolute link to the release page
	Image  string // cover art URL, empty if the page has none
	Artist string // artist page the release was extracted from
}

// HasImage returns true if the release has cover art
func (r Release) HasImage() bool {
	return r.Image != ""
}

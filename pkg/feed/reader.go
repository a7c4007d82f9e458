package feed

import (
	"fmt"
	"os"

	"github.com/mmcdole/gofeed"
)

// Read parses a previously generated feed file
func Read(path string) (*gofeed.Feed, error) {
	fh, err := os.Open(path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("open feed %s: %w", path, err)
	}
	defer fh.Close()

	parsed, err := gofeed.NewParser().Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", path, err)
	}
	return parsed, nil
}

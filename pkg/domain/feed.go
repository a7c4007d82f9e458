package domain

// FeedMeta holds channel level metadata of the generated feed
type FeedMeta struct {
	Title       string
	Link        string
	Description string
}

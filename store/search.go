package store

// SearchSource is a single citation attached to a generated answer.
type SearchSource struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Search is an immutable record of one query/answer exchange.
type Search struct {
	ID        string
	UserID    string
	Query     string
	Response  string
	Category  string
	Sources   []*SearchSource
	CreatedTs int64
}

type FindSearch struct {
	ID *string
}

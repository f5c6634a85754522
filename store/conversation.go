package store

type Conversation struct {
	ID        string
	UserID    string
	Title     string
	Summary   string
	CreatedTs int64
	UpdatedTs int64
}

type FindConversation struct {
	UserID *string
	// Limit caps the result set. Zero means no cap. Results are always
	// ordered by updated_ts descending.
	Limit int
}

type UpdateConversation struct {
	ID      string
	Title   *string
	Summary *string
	// UpdatedTs is always set by the Store before the driver sees it.
	UpdatedTs int64
}

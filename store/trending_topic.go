package store

type TrendingTopic struct {
	ID          string
	Title       string
	Description string
	Category    string
	ReadTime    string
	Icon        string
	ViewCount   int64
	IsActive    bool
	CreatedTs   int64
}

type FindTrendingTopic struct {
	IsActive *bool
	// Limit caps the result set after ranking. Zero means no cap.
	Limit int
}

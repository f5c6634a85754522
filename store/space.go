package store

type Space struct {
	ID            string
	Title         string
	Description   string
	Category      string
	TemplateCount int32
	Icon          string
	Gradient      string
	Tags          []string
	IsActive      bool
	CreatedTs     int64
}

type FindSpace struct {
	IsActive *bool
	Category *string
	Limit    int
}

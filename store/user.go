package store

type User struct {
	ID              string
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	ProfileImageURL string
	CreatedTs       int64
	UpdatedTs       int64
}

type FindUser struct {
	ID *string
	// Email is matched against the stored (lowercased) email.
	Email *string
}

// UpsertUser carries an insert-or-merge write. Nil optional fields leave the
// existing value untouched on merge; timestamps are filled in by the Store.
type UpsertUser struct {
	ID              string
	Email           string
	PasswordHash    *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	CreatedTs       int64
	UpdatedTs       int64
}

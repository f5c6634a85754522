package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"github.com/seekrhq/seekr/internal/profile"
)

const (
	defaultTopicLimit = 10
	defaultSpaceLimit = 10
)

// Store provides database access to all raw objects. Identifier and
// timestamp generation, field normalization and the upsert merge rule live
// here so that the three drivers never diverge on them.
type Store struct {
	profile *profile.Profile
	driver  Driver
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	return s.driver.Close()
}

// User operations.

func (s *Store) GetUser(ctx context.Context, find *FindUser) (*User, error) {
	if find.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*find.Email))
		find.Email = &email
	}
	return s.driver.GetUser(ctx, find)
}

// UpsertUser inserts the user when the id is unknown and merges the provided
// fields otherwise, refreshing updated_ts either way. Conflicting concurrent
// writes resolve last-writer-wins per field.
func (s *Store) UpsertUser(ctx context.Context, upsert *UpsertUser) (*User, error) {
	now := time.Now().Unix()
	if upsert.ID == "" {
		upsert.ID = shortuuid.New()
	}
	upsert.Email = strings.ToLower(strings.TrimSpace(upsert.Email))
	upsert.CreatedTs = now
	upsert.UpdatedTs = now
	return s.driver.UpsertUser(ctx, upsert)
}

// Search operations.

func (s *Store) CreateSearch(ctx context.Context, create *Search) (*Search, error) {
	if create.ID == "" {
		create.ID = shortuuid.New()
	}
	if create.Sources == nil {
		create.Sources = []*SearchSource{}
	}
	create.CreatedTs = time.Now().Unix()
	return s.driver.CreateSearch(ctx, create)
}

func (s *Store) GetSearch(ctx context.Context, find *FindSearch) (*Search, error) {
	return s.driver.GetSearch(ctx, find)
}

// Trending topic operations.

func (s *Store) CreateTrendingTopic(ctx context.Context, create *TrendingTopic) (*TrendingTopic, error) {
	if create.ID == "" {
		create.ID = shortuuid.New()
	}
	create.CreatedTs = time.Now().Unix()
	return s.driver.CreateTrendingTopic(ctx, create)
}

// ListTrendingTopics returns active topics ranked by view count descending.
func (s *Store) ListTrendingTopics(ctx context.Context, limit int) ([]*TrendingTopic, error) {
	if limit <= 0 {
		limit = defaultTopicLimit
	}
	active := true
	return s.driver.ListTrendingTopics(ctx, &FindTrendingTopic{IsActive: &active, Limit: limit})
}

func (s *Store) IncrementTopicViews(ctx context.Context, id string) error {
	return s.driver.IncrementTopicViews(ctx, id)
}

// Space operations.

func (s *Store) CreateSpace(ctx context.Context, create *Space) (*Space, error) {
	if create.ID == "" {
		create.ID = shortuuid.New()
	}
	if create.Tags == nil {
		create.Tags = []string{}
	}
	create.CreatedTs = time.Now().Unix()
	return s.driver.CreateSpace(ctx, create)
}

// ListSpaces returns active spaces ordered by creation time ascending.
func (s *Store) ListSpaces(ctx context.Context, limit int) ([]*Space, error) {
	if limit <= 0 {
		limit = defaultSpaceLimit
	}
	active := true
	return s.driver.ListSpaces(ctx, &FindSpace{IsActive: &active, Limit: limit})
}

// ListSpacesByCategory returns active spaces with an exact category match.
func (s *Store) ListSpacesByCategory(ctx context.Context, category string) ([]*Space, error) {
	active := true
	return s.driver.ListSpaces(ctx, &FindSpace{IsActive: &active, Category: &category})
}

// Conversation operations.

func (s *Store) CreateConversation(ctx context.Context, create *Conversation) (*Conversation, error) {
	now := time.Now().Unix()
	if create.ID == "" {
		create.ID = shortuuid.New()
	}
	create.CreatedTs = now
	create.UpdatedTs = now
	return s.driver.CreateConversation(ctx, create)
}

func (s *Store) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	return s.driver.GetConversation(ctx, id)
}

func (s *Store) UpdateConversation(ctx context.Context, update *UpdateConversation) (*Conversation, error) {
	update.UpdatedTs = time.Now().Unix()
	return s.driver.UpdateConversation(ctx, update)
}

func (s *Store) ListRecentConversations(ctx context.Context, limit int) ([]*Conversation, error) {
	return s.driver.ListConversations(ctx, &FindConversation{Limit: limit})
}

func (s *Store) DeleteConversation(ctx context.Context, id string) error {
	return s.driver.DeleteConversation(ctx, id)
}

// SearchConversations matches query as a case-insensitive substring of the
// conversation title or summary. Case folding uses Go's Unicode lowercase
// rules uniformly for every backend; the match deliberately never happens in
// SQL so that non-ASCII titles behave the same on every driver.
func (s *Store) SearchConversations(ctx context.Context, query string, limit int) ([]*Conversation, error) {
	list, err := s.driver.ListConversations(ctx, &FindConversation{})
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	matched := make([]*Conversation, 0)
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Title), needle) || strings.Contains(strings.ToLower(c.Summary), needle) {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedTs > matched[j].UpdatedTs
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Message operations.

func (s *Store) CreateMessage(ctx context.Context, create *Message) (*Message, error) {
	if create.ID == "" {
		create.ID = shortuuid.New()
	}
	if create.Sources == nil {
		create.Sources = []*SearchSource{}
	}
	create.CreatedTs = time.Now().Unix()
	return s.driver.CreateMessage(ctx, create)
}

func (s *Store) ListMessages(ctx context.Context, conversationID string) ([]*Message, error) {
	return s.driver.ListMessages(ctx, &FindMessage{ConversationID: &conversationID})
}

func (s *Store) DeleteMessages(ctx context.Context, conversationID string) error {
	return s.driver.DeleteMessages(ctx, &DeleteMessage{ConversationID: &conversationID})
}

// Package chat implements conversation threads on top of the store and the
// answer generator.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/internal/metrics"
	"github.com/seekrhq/seekr/plugin/ai"
	"github.com/seekrhq/seekr/store"
)

const (
	titleMaxLen  = 50
	titleCutLen  = 47
	untitledName = "Untitled"

	defaultThreadLimit = 10
)

// ErrThreadNotFound is returned when the referenced thread does not exist.
var ErrThreadNotFound = errors.New("thread not found")

type Service struct {
	Store     *store.Store
	Generator ai.Generator
}

func NewService(st *store.Store, generator ai.Generator) *Service {
	return &Service{Store: st, Generator: generator}
}

// ThreadMessage is one rendered message of a thread.
type ThreadMessage struct {
	Type      string                `json:"type"` // "user" or "ai"
	Content   string                `json:"content"`
	Timestamp int64                 `json:"timestamp"`
	Sources   []*store.SearchSource `json:"sources"`
}

// Thread is a conversation with its full message history.
type Thread struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Messages  []ThreadMessage `json:"messages"`
	CreatedAt int64           `json:"createdAt"`
	UpdatedAt int64           `json:"updatedAt"`
}

// ThreadSummary is the listing shape. MessageCount is not maintained and
// always reads zero; the client derives counts from the loaded thread.
type ThreadSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
	LastMessage  string `json:"lastMessage"`
	MessageCount int    `json:"messageCount"`
}

// AppendResult is the response to appending a message to a thread.
type AppendResult struct {
	ThreadID string                `json:"threadId"`
	Response string                `json:"response"`
	Sources  []*store.SearchSource `json:"sources"`
	Thread   *Thread               `json:"thread"`
}

// ReplyResult is the response of the legacy chat endpoint.
type ReplyResult struct {
	ConversationID string                `json:"conversationId"`
	Response       string                `json:"response"`
	Sources        []*store.SearchSource `json:"sources"`
}

// AppendMessage appends a user message to the thread, generates the
// assistant reply and persists both. An empty threadID starts a new thread
// titled from the message. Generation happens before any write so a failed
// generation never leaves a dangling user message.
func (s *Service) AppendMessage(ctx context.Context, threadID string, message string) (*AppendResult, error) {
	var prior []*store.Message
	if threadID != "" {
		var err error
		if prior, err = s.Store.ListMessages(ctx, threadID); err != nil {
			return nil, errors.Wrap(err, "failed to list messages")
		}
	}
	answer := s.generate(ctx, history(prior), message)

	var conversation *store.Conversation
	var err error
	if threadID != "" {
		conversation, err = s.Store.GetConversation(ctx, threadID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get conversation")
		}
		if conversation == nil {
			return nil, ErrThreadNotFound
		}
	} else {
		conversation, err = s.Store.CreateConversation(ctx, &store.Conversation{
			Title: titleFromMessage(message),
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create conversation")
		}
		threadID = conversation.ID
	}

	if _, err := s.Store.CreateMessage(ctx, &store.Message{
		ConversationID: threadID,
		Role:           store.MessageRoleUser,
		Content:        message,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create user message")
	}
	metrics.RecordChatMessage(string(store.MessageRoleUser))

	if _, err := s.Store.CreateMessage(ctx, &store.Message{
		ConversationID: threadID,
		Role:           store.MessageRoleAssistant,
		Content:        answer.Content,
		Sources:        toStoreSources(answer.Sources),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create assistant message")
	}
	metrics.RecordChatMessage(string(store.MessageRoleAssistant))

	if conversation, err = s.Store.UpdateConversation(ctx, &store.UpdateConversation{ID: threadID}); err != nil {
		return nil, errors.Wrap(err, "failed to touch conversation")
	}

	messages, err := s.Store.ListMessages(ctx, threadID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return &AppendResult{
		ThreadID: threadID,
		Response: answer.Content,
		Sources:  toStoreSources(answer.Sources),
		Thread:   renderThread(conversation, messages),
	}, nil
}

// Reply answers a message without the thread envelope. Messages are only
// persisted when a conversation id is supplied, and only for a conversation
// that exists; messages must never outlive their conversation.
func (s *Service) Reply(ctx context.Context, conversationID string, message string) (*ReplyResult, error) {
	if conversationID != "" {
		conversation, err := s.Store.GetConversation(ctx, conversationID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get conversation")
		}
		if conversation == nil {
			return nil, ErrThreadNotFound
		}
	}

	answer := s.generate(ctx, nil, message)

	if conversationID != "" {
		if _, err := s.Store.CreateMessage(ctx, &store.Message{
			ConversationID: conversationID,
			Role:           store.MessageRoleUser,
			Content:        message,
		}); err != nil {
			return nil, errors.Wrap(err, "failed to create user message")
		}
		if _, err := s.Store.CreateMessage(ctx, &store.Message{
			ConversationID: conversationID,
			Role:           store.MessageRoleAssistant,
			Content:        answer.Content,
			Sources:        toStoreSources(answer.Sources),
		}); err != nil {
			return nil, errors.Wrap(err, "failed to create assistant message")
		}
		if _, err := s.Store.UpdateConversation(ctx, &store.UpdateConversation{ID: conversationID}); err != nil {
			return nil, errors.Wrap(err, "failed to touch conversation")
		}
	}

	return &ReplyResult{
		ConversationID: conversationID,
		Response:       answer.Content,
		Sources:        toStoreSources(answer.Sources),
	}, nil
}

// GetThread loads a thread with its full message history.
func (s *Service) GetThread(ctx context.Context, id string) (*Thread, error) {
	conversation, err := s.Store.GetConversation(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get conversation")
	}
	if conversation == nil {
		return nil, ErrThreadNotFound
	}
	messages, err := s.Store.ListMessages(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}
	return renderThread(conversation, messages), nil
}

// ListThreads returns the most recently updated threads.
func (s *Service) ListThreads(ctx context.Context, limit int) ([]*ThreadSummary, error) {
	if limit <= 0 {
		limit = defaultThreadLimit
	}
	conversations, err := s.Store.ListRecentConversations(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}
	return renderSummaries(conversations), nil
}

// SearchThreads matches the query against thread titles and summaries.
func (s *Service) SearchThreads(ctx context.Context, query string, limit int) ([]*ThreadSummary, error) {
	if limit <= 0 {
		limit = defaultThreadLimit
	}
	conversations, err := s.Store.SearchConversations(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search conversations")
	}
	return renderSummaries(conversations), nil
}

// DeleteThread removes the thread and all of its messages. Messages go first
// so an interrupted delete never orphans them.
func (s *Service) DeleteThread(ctx context.Context, id string) error {
	conversation, err := s.Store.GetConversation(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to get conversation")
	}
	if conversation == nil {
		return ErrThreadNotFound
	}
	if err := s.Store.DeleteMessages(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete messages")
	}
	if err := s.Store.DeleteConversation(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete conversation")
	}
	return nil
}

func (s *Service) generate(ctx context.Context, history []ai.Message, message string) *ai.Answer {
	start := time.Now()
	answer, err := s.Generator.GenerateChatAnswer(ctx, history, message)
	metrics.RecordGeneration(time.Since(start).Seconds())
	if err != nil {
		slog.Warn("chat generation failed", slog.String("error", err.Error()))
		answer = &ai.Answer{}
	}
	if answer.Content == "" {
		answer.Content = fmt.Sprintf("I apologize, but I wasn't able to generate a response for %q. Please try again.", message)
	}
	return answer
}

func history(messages []*store.Message) []ai.Message {
	out := make([]ai.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, ai.Message{Role: string(m.Role), Content: m.Content})
	}
	return out
}

// titleFromMessage counts characters, not bytes, so multi-byte titles are
// neither over-truncated nor cut mid-rune.
func titleFromMessage(message string) string {
	runes := []rune(message)
	if len(runes) > titleMaxLen {
		return string(runes[:titleCutLen]) + "..."
	}
	return message
}

func toStoreSources(sources []ai.Source) []*store.SearchSource {
	out := make([]*store.SearchSource, 0, len(sources))
	for _, s := range sources {
		out = append(out, &store.SearchSource{Title: s.Title, URL: s.URL, Snippet: s.Snippet})
	}
	return out
}

func renderThread(conversation *store.Conversation, messages []*store.Message) *Thread {
	rendered := make([]ThreadMessage, 0, len(messages))
	for _, m := range messages {
		msgType := "ai"
		if m.Role == store.MessageRoleUser {
			msgType = "user"
		}
		sources := m.Sources
		if sources == nil {
			sources = []*store.SearchSource{}
		}
		rendered = append(rendered, ThreadMessage{
			Type:      msgType,
			Content:   m.Content,
			Timestamp: m.CreatedTs,
			Sources:   sources,
		})
	}
	return &Thread{
		ID:        conversation.ID,
		Title:     conversation.Title,
		Messages:  rendered,
		CreatedAt: conversation.CreatedTs,
		UpdatedAt: conversation.UpdatedTs,
	}
}

func renderSummaries(conversations []*store.Conversation) []*ThreadSummary {
	out := make([]*ThreadSummary, 0, len(conversations))
	for _, c := range conversations {
		title := c.Title
		if title == "" {
			title = untitledName
		}
		out = append(out, &ThreadSummary{
			ID:          c.ID,
			Title:       title,
			CreatedAt:   c.CreatedTs,
			UpdatedAt:   c.UpdatedTs,
			LastMessage: c.Summary,
		})
	}
	return out
}

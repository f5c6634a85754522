package chat

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/seekrhq/seekr/internal/profile"
	"github.com/seekrhq/seekr/plugin/ai"
	"github.com/seekrhq/seekr/store"
	"github.com/seekrhq/seekr/store/db"
)

type stubGenerator struct {
	answer *ai.Answer
	err    error
	calls  int
}

func (g *stubGenerator) GenerateAnswer(ctx context.Context, query string, category string) (*ai.Answer, error) {
	g.calls++
	return g.answer, g.err
}

func (g *stubGenerator) GenerateChatAnswer(ctx context.Context, history []ai.Message, message string) (*ai.Answer, error) {
	g.calls++
	return g.answer, g.err
}

func (g *stubGenerator) GenerateSuggestions(ctx context.Context, partial string) ([]string, error) {
	return nil, nil
}

func newTestingService(t *testing.T, generator ai.Generator) *Service {
	t.Helper()
	testingProfile := &profile.Profile{Mode: "dev", Driver: "memory"}
	dbDriver, err := db.NewDBDriver(testingProfile)
	require.NoError(t, err)
	st := store.New(dbDriver, testingProfile)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st, generator)
}

func TestAppendMessageStartsThread(t *testing.T) {
	ctx := context.Background()
	generator := &stubGenerator{answer: &ai.Answer{
		Content: "Here is your answer.",
		Sources: []ai.Source{{Title: "Ref", URL: "https://example.com"}},
	}}
	svc := newTestingService(t, generator)

	result, err := svc.AppendMessage(ctx, "", "What is Go?")
	require.NoError(t, err)
	require.NotEmpty(t, result.ThreadID)
	require.Equal(t, "Here is your answer.", result.Response)
	require.Len(t, result.Sources, 1)

	require.Equal(t, "What is Go?", result.Thread.Title)
	require.Len(t, result.Thread.Messages, 2)
	require.Equal(t, "user", result.Thread.Messages[0].Type)
	require.Equal(t, "What is Go?", result.Thread.Messages[0].Content)
	require.Equal(t, "ai", result.Thread.Messages[1].Type)
	require.Equal(t, "Here is your answer.", result.Thread.Messages[1].Content)
	require.Len(t, result.Thread.Messages[1].Sources, 1)
}

func TestAppendMessageTruncatesLongTitle(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "ok"}})

	message := strings.Repeat("a", 60)
	result, err := svc.AppendMessage(ctx, "", message)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("a", 47)+"...", result.Thread.Title)
	require.Len(t, result.Thread.Title, 50)
}

func TestAppendMessageKeepsShortTitle(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "ok"}})

	message := strings.Repeat("b", 50)
	result, err := svc.AppendMessage(ctx, "", message)
	require.NoError(t, err)
	require.Equal(t, message, result.Thread.Title)
}

func TestAppendMessageTitleCountsRunes(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "ok"}})

	// 30 characters but 60 bytes; the title keeps all of them.
	message := strings.Repeat("é", 30)
	result, err := svc.AppendMessage(ctx, "", message)
	require.NoError(t, err)
	require.Equal(t, message, result.Thread.Title)

	// 60 characters truncate to 47 plus the ellipsis, never mid-rune.
	long := strings.Repeat("é", 60)
	result, err = svc.AppendMessage(ctx, "", long)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("é", 47)+"...", result.Thread.Title)
	require.True(t, utf8.ValidString(result.Thread.Title))
	require.Len(t, []rune(result.Thread.Title), 50)
}

func TestAppendMessageToExistingThread(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "reply"}})

	first, err := svc.AppendMessage(ctx, "", "first question")
	require.NoError(t, err)

	second, err := svc.AppendMessage(ctx, first.ThreadID, "follow up")
	require.NoError(t, err)
	require.Equal(t, first.ThreadID, second.ThreadID)
	require.Equal(t, "first question", second.Thread.Title)
	require.Len(t, second.Thread.Messages, 4)
	require.Equal(t, "follow up", second.Thread.Messages[2].Content)
}

func TestAppendMessageMissingThread(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "reply"}})

	_, err := svc.AppendMessage(ctx, "no-such-thread", "hello")
	require.ErrorIs(t, err, ErrThreadNotFound)

	// Nothing was persisted for the unknown thread.
	messages, err := svc.Store.ListMessages(ctx, "no-such-thread")
	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestAppendMessageFallbackCopy(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{}})

	result, err := svc.AppendMessage(ctx, "", "unanswerable")
	require.NoError(t, err)
	require.Contains(t, result.Response, `I apologize, but I wasn't able to generate a response for "unanswerable"`)
	require.Equal(t, result.Response, result.Thread.Messages[1].Content)
}

func TestAppendMessageGeneratorError(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{err: context.DeadlineExceeded})

	result, err := svc.AppendMessage(ctx, "", "flaky provider")
	require.NoError(t, err)
	require.Contains(t, result.Response, "I apologize")
}

func TestGetThread(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "reply"}})

	created, err := svc.AppendMessage(ctx, "", "hello there")
	require.NoError(t, err)

	thread, err := svc.GetThread(ctx, created.ThreadID)
	require.NoError(t, err)
	require.Equal(t, created.ThreadID, thread.ID)
	require.Len(t, thread.Messages, 2)

	_, err = svc.GetThread(ctx, "missing")
	require.ErrorIs(t, err, ErrThreadNotFound)
}

func TestListThreads(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "reply"}})

	_, err := svc.AppendMessage(ctx, "", "older thread")
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, "", "newer thread")
	require.NoError(t, err)

	threads, err := svc.ListThreads(ctx, 10)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	require.Zero(t, threads[0].MessageCount)

	// Untitled fallback for conversations created without a title.
	conversation, err := svc.Store.CreateConversation(ctx, &store.Conversation{})
	require.NoError(t, err)
	threads, err = svc.ListThreads(ctx, 10)
	require.NoError(t, err)
	require.Len(t, threads, 3)
	for _, thread := range threads {
		if thread.ID == conversation.ID {
			require.Equal(t, "Untitled", thread.Title)
		}
	}
}

func TestSearchThreads(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "reply"}})

	_, err := svc.AppendMessage(ctx, "", "Planning a trip to Japan")
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, "", "Grocery list")
	require.NoError(t, err)

	threads, err := svc.SearchThreads(ctx, "japan", 10)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	require.Equal(t, "Planning a trip to Japan", threads[0].Title)
}

func TestDeleteThread(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "reply"}})

	created, err := svc.AppendMessage(ctx, "", "delete me")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteThread(ctx, created.ThreadID))

	_, err = svc.GetThread(ctx, created.ThreadID)
	require.ErrorIs(t, err, ErrThreadNotFound)

	messages, err := svc.Store.ListMessages(ctx, created.ThreadID)
	require.NoError(t, err)
	require.Empty(t, messages)

	require.ErrorIs(t, svc.DeleteThread(ctx, created.ThreadID), ErrThreadNotFound)
}

func TestReplyWithoutConversationPersistsNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "reply"}})

	result, err := svc.Reply(ctx, "", "ephemeral question")
	require.NoError(t, err)
	require.Equal(t, "reply", result.Response)
	require.Empty(t, result.ConversationID)

	threads, err := svc.ListThreads(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, threads)
}

func TestReplyMissingConversation(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "reply"}})

	_, err := svc.Reply(ctx, "no-such-conversation", "hello")
	require.ErrorIs(t, err, ErrThreadNotFound)

	// No orphaned messages were written for the unknown conversation.
	messages, err := svc.Store.ListMessages(ctx, "no-such-conversation")
	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestReplyWithConversationPersistsMessages(t *testing.T) {
	ctx := context.Background()
	svc := newTestingService(t, &stubGenerator{answer: &ai.Answer{Content: "reply"}})

	conversation, err := svc.Store.CreateConversation(ctx, &store.Conversation{Title: "legacy"})
	require.NoError(t, err)

	result, err := svc.Reply(ctx, conversation.ID, "legacy question")
	require.NoError(t, err)
	require.Equal(t, conversation.ID, result.ConversationID)

	messages, err := svc.Store.ListMessages(ctx, conversation.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, store.MessageRoleUser, messages[0].Role)
	require.Equal(t, store.MessageRoleAssistant, messages[1].Role)
}

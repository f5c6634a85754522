package test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seekrhq/seekr/store"
)

func TestMessagesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	conversation, err := ts.CreateConversation(ctx, &store.Conversation{Title: "ordered"})
	require.NoError(t, err)

	// Created within the same second, so created_ts alone cannot order them.
	for i := 0; i < 8; i++ {
		role := store.MessageRoleUser
		if i%2 == 1 {
			role = store.MessageRoleAssistant
		}
		_, err := ts.CreateMessage(ctx, &store.Message{
			ConversationID: conversation.ID,
			Role:           role,
			Content:        fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	messages, err := ts.ListMessages(ctx, conversation.ID)
	require.NoError(t, err)
	require.Len(t, messages, 8)
	for i, message := range messages {
		require.Equal(t, fmt.Sprintf("message %d", i), message.Content)
	}
}

func TestMessageSourcesRoundTrip(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	conversation, err := ts.CreateConversation(ctx, &store.Conversation{Title: "sourced"})
	require.NoError(t, err)

	_, err = ts.CreateMessage(ctx, &store.Message{
		ConversationID: conversation.ID,
		Role:           store.MessageRoleAssistant,
		Content:        "answer",
		Sources: []*store.SearchSource{
			{Title: "Example", URL: "https://example.com", Snippet: "a snippet"},
			{Title: "No snippet", URL: "https://example.org"},
		},
	})
	require.NoError(t, err)

	messages, err := ts.ListMessages(ctx, conversation.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Sources, 2)
	require.Equal(t, "Example", messages[0].Sources[0].Title)
	require.Equal(t, "https://example.com", messages[0].Sources[0].URL)
	require.Equal(t, "a snippet", messages[0].Sources[0].Snippet)
	require.Empty(t, messages[0].Sources[1].Snippet)
}

func TestDeleteMessagesOnlyTouchesOneConversation(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	doomed, err := ts.CreateConversation(ctx, &store.Conversation{Title: "doomed"})
	require.NoError(t, err)
	survivor, err := ts.CreateConversation(ctx, &store.Conversation{Title: "survivor"})
	require.NoError(t, err)

	for _, conversationID := range []string{doomed.ID, survivor.ID} {
		for i := 0; i < 3; i++ {
			_, err := ts.CreateMessage(ctx, &store.Message{
				ConversationID: conversationID,
				Role:           store.MessageRoleUser,
				Content:        fmt.Sprintf("msg %d", i),
			})
			require.NoError(t, err)
		}
	}

	require.NoError(t, ts.DeleteMessages(ctx, doomed.ID))

	messages, err := ts.ListMessages(ctx, doomed.ID)
	require.NoError(t, err)
	require.Empty(t, messages)

	messages, err = ts.ListMessages(ctx, survivor.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
}

func TestListMessagesForEmptyConversation(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	conversation, err := ts.CreateConversation(ctx, &store.Conversation{Title: "empty"})
	require.NoError(t, err)

	messages, err := ts.ListMessages(ctx, conversation.ID)
	require.NoError(t, err)
	require.Empty(t, messages)
}

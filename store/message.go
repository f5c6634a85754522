package store

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type Message struct {
	ID             string
	ConversationID string
	Role           MessageRole
	Content        string
	Sources        []*SearchSource
	CreatedTs      int64
}

type FindMessage struct {
	ConversationID *string
}

type DeleteMessage struct {
	ConversationID *string
}

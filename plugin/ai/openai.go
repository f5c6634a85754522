package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/seekrhq/seekr/internal/profile"
)

const (
	answerTimeout      = 30 * time.Second
	answerMaxTokens    = 1024
	suggestionTimeout  = 10 * time.Second
	suggestionMaxCount = 5
)

const answerSystemPrompt = `You are a search assistant. Answer the user's question directly and concisely.
Cite up to three web sources that support your answer. If you are not confident
about a source, omit it rather than inventing one.`

const suggestionSystemPrompt = `You complete partial search queries. Given a fragment, return up to five
likely full queries a user might be typing. Keep each suggestion short.`

type openAIGenerator struct {
	client *openai.Client
	model  string
}

func newOpenAIGenerator(p *profile.Profile) *openAIGenerator {
	config := openai.DefaultConfig(p.AIOpenAIAPIKey)
	if p.AIOpenAIBaseURL != "" {
		config.BaseURL = p.AIOpenAIBaseURL
	}
	return &openAIGenerator{
		client: openai.NewClientWithConfig(config),
		model:  p.AIModel,
	}
}

func (g *openAIGenerator) GenerateAnswer(ctx context.Context, query string, category string) (*Answer, error) {
	prompt := query
	if category != "" {
		prompt = fmt.Sprintf("[%s] %s", category, query)
	}
	return g.complete(ctx, nil, prompt)
}

func (g *openAIGenerator) GenerateChatAnswer(ctx context.Context, history []Message, message string) (*Answer, error) {
	return g.complete(ctx, history, message)
}

func (g *openAIGenerator) complete(ctx context.Context, history []Message, message string) (*Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, answerTimeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: answerSystemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	req := openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: answerMaxTokens,
		Messages:  messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "search_answer",
				Strict: true,
				Schema: answerJSONSchema,
			},
		},
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, req)
	latency := time.Since(start)
	if err != nil {
		slog.Error("answer_generation_failed",
			"model", g.model,
			"error", err,
			"latency_ms", latency.Milliseconds())
		return nil, fmt.Errorf("LLM request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from LLM")
	}

	var result struct {
		Content string   `json:"content"`
		Sources []Source `json:"sources"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		slog.Warn("answer_generation_parse_failed",
			"model", g.model,
			"error", err)
		// Fall back to the raw completion text without sources.
		return &Answer{Content: resp.Choices[0].Message.Content}, nil
	}

	slog.Debug("answer_generation_success",
		"model", g.model,
		"sources", len(result.Sources),
		"latency_ms", latency.Milliseconds(),
		"tokens_total", resp.Usage.TotalTokens)

	return &Answer{Content: result.Content, Sources: result.Sources}, nil
}

func (g *openAIGenerator) GenerateSuggestions(ctx context.Context, partial string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, suggestionTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: 128,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: suggestionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: partial},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "search_suggestions",
				Strict: true,
				Schema: suggestionJSONSchema,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from LLM")
	}

	var result struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("parse response failed: %w", err)
	}
	if len(result.Suggestions) > suggestionMaxCount {
		result.Suggestions = result.Suggestions[:suggestionMaxCount]
	}
	return result.Suggestions, nil
}

var answerJSONSchema = &jsonSchema{
	Type:                 "object",
	AdditionalProperties: false,
	Required:             []string{"content", "sources"},
	Properties: map[string]*jsonSchema{
		"content": {
			Type:        "string",
			Description: "The answer text",
		},
		"sources": {
			Type: "array",
			Items: &jsonSchema{
				Type:                 "object",
				AdditionalProperties: false,
				Required:             []string{"title", "url"},
				Properties: map[string]*jsonSchema{
					"title":   {Type: "string"},
					"url":     {Type: "string"},
					"snippet": {Type: "string"},
				},
			},
		},
	},
}

var suggestionJSONSchema = &jsonSchema{
	Type:                 "object",
	AdditionalProperties: false,
	Required:             []string{"suggestions"},
	Properties: map[string]*jsonSchema{
		"suggestions": {
			Type:  "array",
			Items: &jsonSchema{Type: "string"},
		},
	},
}

// jsonSchema implements json.Marshaler for OpenAI's JSON Schema format.
// The alias type prevents infinite recursion during marshaling.
type jsonSchema struct {
	Properties           map[string]*jsonSchema `json:"properties,omitempty"`
	Items                *jsonSchema            `json:"items,omitempty"`
	Type                 string                 `json:"type"`
	Description          string                 `json:"description,omitempty"`
	Required             []string               `json:"required,omitempty"`
	AdditionalProperties bool                   `json:"additionalProperties"`
}

func (s *jsonSchema) MarshalJSON() ([]byte, error) {
	type alias jsonSchema
	return json.Marshal((*alias)(s))
}

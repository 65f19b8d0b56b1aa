// Package chat adapts ai.Message conversations to langchaingo models.
package chat

import (
	"context"
	"time"

	"github.com/poiesic/notesum/ai"
	"github.com/tmc/langchaingo/llms"
)

// MessageContent converts messages into langchaingo message content.
func MessageContent(messages []ai.Message) []llms.MessageContent {
	content := make([]llms.MessageContent, len(messages))
	for i, m := range messages {
		content[i] = llms.MessageContent{
			Role:  chatRole(m.Role),
			Parts: []llms.ContentPart{llms.TextPart(m.Content)},
		}
	}
	return content
}

func chatRole(role ai.Role) llms.ChatMessageType {
	switch role {
	case ai.RoleSystem:
		return llms.ChatMessageTypeSystem
	case ai.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

// CallOptions returns the per-call options derived from config.
func CallOptions(config *ai.Config) []llms.CallOption {
	var opts []llms.CallOption
	if config.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(config.Temperature))
	}
	return opts
}

// Generate runs one chat completion and returns the text of the first choice.
// A positive timeout bounds the call through a derived context.
func Generate(ctx context.Context, model llms.Model, messages []ai.Message, timeout time.Duration, opts ...llms.CallOption) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	response, err := model.GenerateContent(ctx, MessageContent(messages), opts...)
	if err != nil {
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", ai.ErrEmptyResponse
	}
	return response.Choices[0].Content, nil
}

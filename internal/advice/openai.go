package advice

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIOptions configures an OpenAIAdvisor. Only APIKey is required.
type OpenAIOptions struct {
	APIKey   string
	Model    string
	Fallback Advisor
}

// OpenAIAdvisor asks the chat completions API for advice. Like the
// Gemini advisor it degrades instead of surfacing provider errors.
type OpenAIAdvisor struct {
	client   *openai.Client
	model    string
	fallback Advisor
}

// NewOpenAIAdvisor validates options and applies defaults.
func NewOpenAIAdvisor(opts OpenAIOptions) (*OpenAIAdvisor, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIAdvisor{
		client:   openai.NewClient(opts.APIKey),
		model:    model,
		fallback: opts.Fallback,
	}, nil
}

func (o *OpenAIAdvisor) Advise(ctx context.Context, query, userContext string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(query, userContext)},
		},
	})
	if err != nil {
		return degrade(ctx, o.fallback, query, userContext)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return emptyResponse, nil
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Advisor = (*OpenAIAdvisor)(nil)

package usecase

import (
	"context"

	"github.com/lifeofnimah/host-with-nimah/config"
	"github.com/lifeofnimah/host-with-nimah/internal/model"
	openai_tools "github.com/lifeofnimah/host-with-nimah/pkg/openai-tools"
	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

const (
	OpenAIRoleSystem    = "system"
	OpenAIRoleUser      = "user"
	OpenAIRoleAssistant = "assistant"
)

// Fixed fallback texts. These are ordinary displayable replies, not errors:
// the conversation controller appends them as assistant turns.
const (
	MessageOffline    = "I'm currently offline (API Key missing). Please check back later, darling."
	MessagePondering  = "I'm pondering the perfect response... try again in a moment."
	MessageApologetic = "My apologies, I seem to be having trouble connecting to my culinary database at the moment."
)

const (
	ReasonMissingKey      = "api key missing"
	ReasonTransportError  = "completion request failed"
	ReasonEmptyCompletion = "empty completion"
)

// systemInstruction defines the assistant persona and the recipe format
// contract the extractor relies on.
const systemInstruction = `
You are the digital assistant for "Host with Nimah" and "Life of Nimah".
Nimah is an elegant, detail-oriented event host and culinary enthusiast with strong roots in Tanzanian cuisine.
Your tone should be warm, aesthetic, sophisticated, and welcoming. Use phrases like "karibu" (welcome) occasionally if appropriate.

You assist users with:
1. Event concepts and themes (dinner parties, brunches, soirées).
2. Recipe ideas (modern, aesthetic plating, and specifically Tanzanian dishes like Pilau, Biryani, Chapati, Kuku Paka, etc.).
3. Menu planning advice.
4. If a user asks to book Nimah, guide them to the booking form section of the website.

IMPORTANT: When providing a recipe, you MUST strictly use the following format so it can be beautifully rendered on the website:

# Recipe: [Recipe Name]
## Description
[A brief, evocative description of the dish]
## Prep Info
* Prep time: [Time]
* Cook time: [Time]
* Serves: [Number of guests]
## Ingredients
* [Quantity and Ingredient 1]
* [Quantity and Ingredient 2]
...
## Instructions
1. [Step 1]
2. [Step 2]
...
## Plating
[Aesthetic plating instructions or wine pairing tip]

For non-recipe responses, simply use natural conversational paragraphs.
`

// AssistantUsecase talks to the hosted completion service. It never
// returns an error for service trouble: missing credentials, transport
// failures, and empty completions all settle into a degraded Reply with
// fixed fallback text.
type AssistantUsecase struct {
	cfg    config.OpenAI
	logger zerolog.Logger
}

func NewAssistantUsecase(cfg config.OpenAI, logger zerolog.Logger) *AssistantUsecase {
	return &AssistantUsecase{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *AssistantUsecase) Generate(
	ctx context.Context,
	text string,
	history []model.Message,
) (Reply, error) {
	if a.cfg.OpenAIAPIKey == "" {
		return Reply{Text: MessageOffline, Degraded: true, Reason: ReasonMissingKey}, nil
	}

	messageHistory := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messageHistory = append(
		messageHistory, openai.ChatCompletionMessage{
			Role:    OpenAIRoleSystem,
			Content: systemInstruction,
		},
	)
	for _, message := range history {
		messageHistory = append(
			messageHistory, openai.ChatCompletionMessage{
				Role:    parseMessageSourceToRole(message.Source),
				Content: message.Body,
			},
		)
	}
	messageHistory = append(
		messageHistory, openai.ChatCompletionMessage{
			Role:    OpenAIRoleUser,
			Content: text,
		},
	)
	messageHistory = a.trimToTokenBudget(messageHistory)

	clientConfig := openai.DefaultConfig(a.cfg.OpenAIAPIKey)
	if a.cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = a.cfg.OpenAIBaseURL
	}
	c := openai.NewClientWithConfig(clientConfig)

	req := openai.ChatCompletionRequest{
		Model:       a.cfg.OpenAIModel,
		Temperature: a.cfg.ModelTemperature,
		TopP:        1,
		N:           1,
		Messages:    messageHistory,
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		a.logger.Error().Err(err).Msg("chat completion failed")
		return Reply{Text: MessageApologetic, Degraded: true, Reason: ReasonTransportError}, nil
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return Reply{Text: MessagePondering, Degraded: true, Reason: ReasonEmptyCompletion}, nil
	}
	return Reply{Text: resp.Choices[0].Message.Content}, nil
}

// trimToTokenBudget drops the oldest turns (keeping the system
// instruction) until the request fits the configured token budget.
func (a *AssistantUsecase) trimToTokenBudget(
	messageHistory []openai.ChatCompletionMessage,
) []openai.ChatCompletionMessage {
	trimHistory := func() {
		// index 0 is the system instruction
		messageHistory = append(messageHistory[:1], messageHistory[2:]...)
		a.logger.Info().Msg("history trimmed due to token limit")
	}
	for len(messageHistory) > 2 {
		tokenCount, err := openai_tools.CountToken(messageHistory, a.cfg.OpenAIModel)
		if err != nil {
			a.logger.Warn().Err(err).Msg("count token error")
			trimHistory()
			continue
		}
		if tokenCount < a.cfg.TokenBudget {
			break
		}
		trimHistory()
	}
	return messageHistory
}

func parseMessageSourceToRole(source model.MessageSource) string {
	switch source {
	case model.MessageSourceUser:
		return OpenAIRoleUser
	case model.MessageSourceAssistant:
		return OpenAIRoleAssistant
	default:
		return OpenAIRoleUser
	}
}

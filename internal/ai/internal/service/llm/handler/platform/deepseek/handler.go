package deepseek

import (
	"context"
	"math"

	"github.com/ecodeclub/cvhub/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	baseUrl = "https://dashscope.aliyuncs.com/compatible-mode/v1/"
)

// Handler 走阿里云百炼的 OpenAI 兼容接口调用 deepseek
type Handler struct {
	client *openai.Client
}

func NewHandler(apikey string) *Handler {
	client := openai.NewClient(
		option.WithBaseURL(baseUrl),
		option.WithAPIKey(apikey),
	)
	return &Handler{
		client: client,
	}
}

func (h *Handler) Name() string {
	return "deepseek"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(req))
	if err != nil {
		return domain.LLMResponse{}, err
	}
	tokens := completion.Usage.TotalTokens
	amt := math.Ceil(float64(tokens*req.Config.Price) / float64(1000))
	resp := domain.LLMResponse{
		Tokens: tokens,
		Amount: int64(amt),
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (h *Handler) buildParams(req domain.LLMRequest) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Config.SystemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(req.Config.SystemPrompt))
	}
	msgs = append(msgs, openai.UserMessage(req.Prompt()))
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(msgs),
		Model:    openai.F(req.Config.Model),
	}
	if req.Config.Temperature > 0 {
		params.Temperature = openai.F(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		params.TopP = openai.F(req.Config.TopP)
	}
	return params
}

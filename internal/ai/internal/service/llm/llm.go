package llm

import (
	"context"

	"github.com/ecodeclub/cvhub/internal/ai/internal/domain"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler"
)

//go:generate mockgen -source=./llm.go -destination=../../../mocks/llm.mock.go -package=aimocks Service
type Service interface {
	Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
}

type llmService struct {
	// 这边显式依赖组合之后的根 Handler
	handler handler.Handler
}

func NewLLMService(root handler.Handler) Service {
	return &llmService{
		handler: root,
	}
}

func (g *llmService) Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return g.handler.Handle(ctx, req)
}

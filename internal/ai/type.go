package ai

import (
	"github.com/ecodeclub/cvhub/internal/ai/internal/domain"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type BizConfig = domain.BizConfig
type Service = llm.Service

const BizResumeParse = domain.BizResumeParse

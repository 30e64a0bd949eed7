//go:build wireinject

package startup

import (
	hdlmocks "github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/mocks"

	"github.com/ecodeclub/cvhub/internal/ai"
	"github.com/ecodeclub/cvhub/internal/ai/internal/repository"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, hdl *hdlmocks.MockHandler) (*ai.Module, error) {
	wire.Build(
		llm.NewLLMService,
		repository.NewLLMLogRepo,
		ai.InitLLMRecordDAO,

		log.NewHandler,
		record.NewHandler,

		ai.InitCommonHandlers,
		InitRootHandler,

		wire.Struct(new(ai.Module), "*"),
	)
	return new(ai.Module), nil
}

func InitRootHandler(common []handler.Builder, hdl *hdlmocks.MockHandler) handler.Handler {
	return handler.NewCompositionHandler(common, hdl)
}

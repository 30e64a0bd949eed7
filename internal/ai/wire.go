//go:build wireinject

package ai

import (
	"github.com/ecodeclub/cvhub/internal/ai/internal/repository"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		llm.NewLLMService,
		repository.NewLLMLogRepo,
		InitLLMRecordDAO,

		log.NewHandler,
		record.NewHandler,

		InitCommonHandlers,
		InitRootHandler,

		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

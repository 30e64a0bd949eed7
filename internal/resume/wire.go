//go:build wireinject

package resume

import (
	"github.com/ecodeclub/cvhub/internal/ai"
	"github.com/ecodeclub/cvhub/internal/document"
	"github.com/ecodeclub/cvhub/internal/resume/internal/event"
	"github.com/ecodeclub/cvhub/internal/resume/internal/repository"
	"github.com/ecodeclub/cvhub/internal/resume/internal/service"
	"github.com/ecodeclub/cvhub/internal/resume/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	docSvc document.Service,
	aiModule *ai.Module) (*Module, error) {
	wire.Build(
		InitResumeDAO,
		InitParseServiceConfig,
		repository.NewResumeRepo,
		event.NewResumeParsedEventProducer,
		wire.FieldsOf(new(*ai.Module), "Svc"),
		service.NewParseService,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

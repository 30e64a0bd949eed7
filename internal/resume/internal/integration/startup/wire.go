//go:build wireinject

package startup

import (
	"sync"

	"github.com/ecodeclub/cvhub/internal/ai"
	"github.com/ecodeclub/cvhub/internal/document"
	"github.com/ecodeclub/cvhub/internal/resume"
	"github.com/ecodeclub/cvhub/internal/resume/internal/event"
	"github.com/ecodeclub/cvhub/internal/resume/internal/repository"
	"github.com/ecodeclub/cvhub/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/cvhub/internal/resume/internal/service"
	"github.com/ecodeclub/cvhub/internal/resume/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component,
	p event.ResumeParsedEventProducer,
	docSvc document.Service,
	aiModule *ai.Module) (*resume.Module, error) {
	wire.Build(
		InitResumeDAO,
		resume.InitParseServiceConfig,
		repository.NewResumeRepo,
		wire.FieldsOf(new(*ai.Module), "Svc"),
		service.NewParseService,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(resume.Module), "*"),
	)
	return new(resume.Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitResumeDAO(db *egorm.Component) dao.ResumeDAO {
	InitTableOnce(db)
	return dao.NewGORMResumeDAO(db)
}

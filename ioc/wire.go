//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/cvhub/internal/ai"
	"github.com/ecodeclub/cvhub/internal/document"
	"github.com/ecodeclub/cvhub/internal/resume"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		document.NewService,
		ai.InitModule,
		resume.InitModule,
		wire.FieldsOf(new(*resume.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}

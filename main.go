package main

import (
	"context"

	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/ecodeclub/cvhub/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// 记得修改为你的配置文件
// go run main.go --config=config/local.yaml
func main() {
	// 先触发初始化
	egoApp := ego.New()
	// 初始化
	tp := ioc.InitZipkinTracer()
	defer func(tp *trace.TracerProvider) {
		err := tp.Shutdown(context.Background())
		if err != nil {
			elog.Error("Shutdown zipkinTracer", elog.FieldErr(err))
		}
	}(tp)
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	err = egoApp.
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/cvhub/internal/pkg/middleware"
	"github.com/ecodeclub/cvhub/internal/resume"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(resumeHdl *resume.Handler) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "meoying.com")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 整个服务不做登录，全部路由都是公开的
	resumeHdl.PublicRoutes(res.Engine)
	return res
}

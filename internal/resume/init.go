package resume

import (
	"sync"

	"github.com/ecodeclub/cvhub/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/cvhub/internal/resume/internal/service"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm"
)

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

// InitParseServiceConfig 从配置里面解析出大模型调用参数，
// 解析完就是一个普通的结构体，后面全程显式传递
func InitParseServiceConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("resume", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

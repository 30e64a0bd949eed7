package ai

import (
	"sync"

	"github.com/ecodeclub/cvhub/internal/ai/internal/repository/dao"
	"github.com/ego-component/egorm"
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

func InitLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMLLMRecordDAO(db)
}

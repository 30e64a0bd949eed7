package domain

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
)

// BizResumeParse 简历结构化解析
const BizResumeParse = "resume_parse"

type LLMRequest struct {
	Biz string
	// 请求id
	Tid string
	// 用户的输入
	Input []string
	// 业务相关的配置
	Config BizConfig

	// prompt 将 input 和 PromptTemplate 结合之后生成的正儿八经的 Prompt
	prompt string
}

func (req *LLMRequest) Prompt() string {
	if req.prompt == "" {
		args := slice.Map(req.Input, func(idx int, src string) any {
			return src
		})
		req.prompt = fmt.Sprintf(req.Config.PromptTemplate, args...)
	}
	return req.prompt
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// 花费的金额
	Amount int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	// 使用的模型
	Model string
	// 多少分钱/1000 token
	Price int64

	Temperature float64
	TopP        float64

	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入
	// 这里我们不用计算 token，只需要简单约束一下字符串长度就可以
	MaxInput int
	// 提示词，一般使用 %s 占位
	PromptTemplate string
}

type LLMRecord struct {
	Id             int64
	Tid            string
	Biz            string
	Tokens         int64
	Amount         int64
	Input          []string
	Status         RecordStatus
	PromptTemplate string
	Answer         string
	Ctime          int64
	Utime          int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ecodeclub/cvhub/internal/ai"
	"github.com/ecodeclub/cvhub/internal/document"
	"github.com/ecodeclub/cvhub/internal/resume/internal/domain"
	"github.com/ecodeclub/cvhub/internal/resume/internal/event"
	"github.com/ecodeclub/cvhub/internal/resume/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	// ErrEmptyDocument 文件能打开，但是提取不出任何文本
	ErrEmptyDocument = errors.New("提取出来的文本为空")
	// ErrLLMFailed 大模型调用失败
	ErrLLMFailed = errors.New("大模型调用失败")
	// ErrInvalidParseResult 大模型的回答清洗之后仍然不是约定形状的 JSON
	ErrInvalidParseResult = errors.New("解析结果不是合法的 JSON")
)

// jsonExpr 从大模型的回答里面提取 JSON 本体，
// 模型偶尔会画蛇添足地带上 markdown 代码块标记
const jsonExpr = `(?s)\{.*\}`

var jsonPattern = regexp.MustCompile(jsonExpr)

// resumeSchema 要求大模型返回的 JSON 形状，所有字段都允许缺失
const resumeSchema = `{
  "personal_info": {"name": "string|null", "email": "string|null", "phone": "string|null", "location": "string|null", "linkedin": "string|null"},
  "summary": "string|null",
  "skills": ["string"],
  "work_experience": [{"company": "string|null", "job_title": "string|null", "start_date": "string|null", "end_date": "string|null", "description": "string|null"}],
  "projects": [{"name": "string|null", "description": "string|null", "technologies": ["string"]}],
  "education": [{"institution": "string|null", "degree": "string|null", "end_date": "string|null"}]
}`

// promptTemplate 只有一个 %s 占位符，放简历全文
const promptTemplate = `你是一个专业的简历解析助手。从下面的简历文本里面提取关键信息，严格按照这个 JSON Schema 输出：
` + resumeSchema + `
提取不到的字段填 null，日期保持原文（常见 YYYY-MM 或者 Present），不要翻译简历内容。
只输出 JSON 本身，不要带 markdown 代码块标记。
简历文本：
%s`

// Config 简历解析的大模型参数，启动的时候从配置文件读一次
type Config struct {
	// 使用的模型
	Model string `yaml:"model"`
	// 多少分钱/1000 token
	Price       int64   `yaml:"price"`
	Temperature float64 `yaml:"temperature"`
	TopP        float64 `yaml:"topP"`
	// 送给大模型的简历文本长度上限，超出部分直接截断
	MaxInput int `yaml:"maxInput"`
}

//go:generate mockgen -source=./parse.go -package=svcmocks -destination=./mocks/parse.mock.go ParseService
type ParseService interface {
	// Parse 提取文本，调大模型结构化，再按身份键落库，
	// 返回落库之后的完整聚合
	Parse(ctx context.Context, file document.File) (domain.Resume, error)
}

type parseService struct {
	docSvc   document.Service
	aiSvc    ai.Service
	repo     repository.ResumeRepo
	producer event.ResumeParsedEventProducer
	cfg      Config
	logger   *elog.Component
}

func NewParseService(docSvc document.Service,
	aiSvc ai.Service,
	repo repository.ResumeRepo,
	producer event.ResumeParsedEventProducer,
	cfg Config) ParseService {
	return &parseService{
		docSvc:   docSvc,
		aiSvc:    aiSvc,
		repo:     repo,
		producer: producer,
		cfg:      cfg,
		logger:   elog.DefaultLogger,
	}
}

func (s *parseService) Parse(ctx context.Context, file document.File) (domain.Resume, error) {
	text, err := s.docSvc.ExtractText(ctx, file)
	if err != nil {
		return domain.Resume{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Resume{}, fmt.Errorf("%w: %s", ErrEmptyDocument, file.Name)
	}
	if max := s.cfg.MaxInput; max > 0 {
		rs := []rune(text)
		if len(rs) > max {
			text = string(rs[:max])
		}
	}
	// 大模型调用在任何存储事务开始之前完成
	tid := shortuuid.New()
	resp, err := s.aiSvc.Invoke(ctx, ai.LLMRequest{
		Biz:    ai.BizResumeParse,
		Tid:    tid,
		Input:  []string{text},
		Config: s.bizConfig(),
	})
	if err != nil {
		return domain.Resume{}, fmt.Errorf("%w: %s", ErrLLMFailed, err.Error())
	}
	parsed, err := s.decode(resp.Answer)
	if err != nil {
		return domain.Resume{}, err
	}
	id, err := s.repo.Save(ctx, parsed)
	if err != nil {
		return domain.Resume{}, err
	}
	res, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Resume{}, err
	}
	s.sendParsedEvent(res, tid)
	return res, nil
}

func (s *parseService) bizConfig() ai.BizConfig {
	return ai.BizConfig{
		Model:          s.cfg.Model,
		Price:          s.cfg.Price,
		Temperature:    s.cfg.Temperature,
		TopP:           s.cfg.TopP,
		MaxInput:       s.cfg.MaxInput,
		PromptTemplate: promptTemplate,
	}
}

func (s *parseService) decode(answer string) (domain.Resume, error) {
	val := jsonPattern.FindString(answer)
	if val == "" {
		return domain.Resume{}, fmt.Errorf("%w: %s", ErrInvalidParseResult, answer)
	}
	var er extractedResume
	if err := json.Unmarshal([]byte(val), &er); err != nil {
		return domain.Resume{}, fmt.Errorf("%w: %s", ErrInvalidParseResult, err.Error())
	}
	return er.toDomain(), nil
}

func (s *parseService) sendParsedEvent(res domain.Resume, tid string) {
	evt := event.ResumeParsedEvent{
		ResumeId: res.Id,
		Email:    res.PersonalInfo.Email,
		Tid:      tid,
	}
	go func() {
		newCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()
		err := s.producer.Produce(newCtx, evt)
		if err != nil {
			s.logger.Error("发送简历解析完成事件失败",
				elog.FieldErr(err),
				elog.Int64("rid", res.Id))
		}
	}()
}

// extractedResume 大模型回答的 JSON 形状，
// null 和缺失的字段都会落成零值
type extractedResume struct {
	PersonalInfo   extractedPersonal     `json:"personal_info"`
	Summary        string                `json:"summary"`
	Skills         []string              `json:"skills"`
	WorkExperience []extractedExperience `json:"work_experience"`
	Projects       []extractedProject    `json:"projects"`
	Education      []extractedEducation  `json:"education"`
}

type extractedPersonal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
}

type extractedExperience struct {
	Company     string `json:"company"`
	JobTitle    string `json:"job_title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type extractedProject struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type extractedEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	EndDate     string `json:"end_date"`
}

func (er extractedResume) toDomain() domain.Resume {
	return domain.Resume{
		Summary: er.Summary,
		PersonalInfo: domain.PersonalInfo{
			Name:     er.PersonalInfo.Name,
			Email:    er.PersonalInfo.Email,
			Phone:    er.PersonalInfo.Phone,
			Location: er.PersonalInfo.Location,
			LinkedIn: er.PersonalInfo.LinkedIn,
		},
		Skills: er.Skills,
		WorkExperiences: slice.Map(er.WorkExperience, func(idx int, src extractedExperience) domain.WorkExperience {
			return domain.WorkExperience{
				Company:     src.Company,
				JobTitle:    src.JobTitle,
				StartDate:   src.StartDate,
				EndDate:     src.EndDate,
				Description: src.Description,
			}
		}),
		Projects: slice.Map(er.Projects, func(idx int, src extractedProject) domain.Project {
			return domain.Project{
				Name:         src.Name,
				Description:  src.Description,
				Technologies: src.Technologies,
			}
		}),
		Educations: slice.Map(er.Education, func(idx int, src extractedEducation) domain.Education {
			return domain.Education{
				Institution: src.Institution,
				Degree:      src.Degree,
				EndDate:     src.EndDate,
			}
		}),
	}
}

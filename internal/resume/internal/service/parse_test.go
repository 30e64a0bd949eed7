package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/ecodeclub/cvhub/internal/ai"
	aimocks "github.com/ecodeclub/cvhub/internal/ai/mocks"
	"github.com/ecodeclub/cvhub/internal/document"
	docmocks "github.com/ecodeclub/cvhub/internal/document/mocks"
	"github.com/ecodeclub/cvhub/internal/resume/internal/domain"
	"github.com/ecodeclub/cvhub/internal/resume/internal/event"
	evtmocks "github.com/ecodeclub/cvhub/internal/resume/internal/event/mocks"
	"github.com/ecodeclub/cvhub/internal/resume/internal/repository"
	repomocks "github.com/ecodeclub/cvhub/internal/resume/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestJSONExpression 测试利用正则表达式提取 JSON 串
func TestJSONExpression(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "本身就是JSON",
			input: `{"abc": "bcd"}`,
			want:  `{"abc": "bcd"}`,
		},
		{
			name:  "有前缀后缀",
			input: "```json{\"abc\": \"bcd\"}```",
			want:  `{"abc": "bcd"}`,
		},
		{
			name:  "跨行的JSON",
			input: "```json\n{\n  \"abc\": \"bcd\"\n}\n```",
			want:  "{\n  \"abc\": \"bcd\"\n}",
		},
	}

	expr := regexp.MustCompile(jsonExpr)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val := expr.FindString(tc.input)
			assert.Equal(t, tc.want, val)
		})
	}
}

const testAnswer = "```json\n" +
	`{"personal_info":{"name":"Tom","email":"tom@example.com"},` +
	`"summary":"资深后端","skills":["Go","Kafka"],` +
	`"work_experience":[{"company":"Acme","job_title":"后端工程师","start_date":"2021-06","end_date":"Present"}],` +
	`"projects":[{"name":"网关","technologies":["Go","Kafka"]}],` +
	`"education":[{"institution":"清华大学","degree":"本科"}]}` +
	"\n```"

func testParsedResume() domain.Resume {
	return domain.Resume{
		Summary: "资深后端",
		PersonalInfo: domain.PersonalInfo{
			Name:  "Tom",
			Email: "tom@example.com",
		},
		Skills: []string{"Go", "Kafka"},
		WorkExperiences: []domain.WorkExperience{
			{Company: "Acme", JobTitle: "后端工程师", StartDate: "2021-06", EndDate: "Present"},
		},
		Projects: []domain.Project{
			{Name: "网关", Technologies: []string{"Go", "Kafka"}},
		},
		Educations: []domain.Education{
			{Institution: "清华大学", Degree: "本科"},
		},
	}
}

// nopProducer 表格用例不关心事件，事件本身有专门的测试
type nopProducer struct{}

func (nopProducer) Produce(ctx context.Context, evt event.ResumeParsedEvent) error {
	return nil
}

func TestParseService_Parse(t *testing.T) {
	parsed := testParsedResume()
	saved := testParsedResume()
	saved.Id = 5

	testCases := []struct {
		name    string
		cfg     Config
		file    document.File
		mock    func(ctrl *gomock.Controller) (document.Service, ai.Service, repository.ResumeRepo)
		want    domain.Resume
		wantErr error
	}{
		{
			name: "解析成功-答案带代码块标记",
			cfg:  Config{Model: "glm-4", MaxInput: 10000},
			file: document.File{Name: "tom.pdf", Type: document.TypePDF},
			mock: func(ctrl *gomock.Controller) (document.Service, ai.Service, repository.ResumeRepo) {
				docSvc := docmocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				repo := repomocks.NewMockResumeRepo(ctrl)
				extract := docSvc.EXPECT().ExtractText(gomock.Any(), gomock.Any()).
					Return("Tom 的简历全文", nil)
				invoke := aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, ai.BizResumeParse, req.Biz)
						assert.NotEmpty(t, req.Tid)
						assert.Equal(t, []string{"Tom 的简历全文"}, req.Input)
						assert.Equal(t, "glm-4", req.Config.Model)
						return ai.LLMResponse{Tokens: 100, Amount: 100, Answer: testAnswer}, nil
					})
				save := repo.EXPECT().Save(gomock.Any(), parsed).Return(int64(5), nil)
				find := repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(saved, nil)
				// 大模型调用严格在落库之前
				gomock.InOrder(extract, invoke, save, find)
				return docSvc, aiSvc, repo
			},
			want: saved,
		},
		{
			name: "超长文本按字符截断",
			cfg:  Config{MaxInput: 5},
			file: document.File{Name: "tom.pdf", Type: document.TypePDF},
			mock: func(ctrl *gomock.Controller) (document.Service, ai.Service, repository.ResumeRepo) {
				docSvc := docmocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				repo := repomocks.NewMockResumeRepo(ctrl)
				docSvc.EXPECT().ExtractText(gomock.Any(), gomock.Any()).
					Return("一二三四五六七八", nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(t, []string{"一二三四五"}, req.Input)
						return ai.LLMResponse{Answer: testAnswer}, nil
					})
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(5), nil)
				repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(saved, nil)
				return docSvc, aiSvc, repo
			},
			want: saved,
		},
		{
			name: "提取出来的文本是空白",
			cfg:  Config{MaxInput: 10000},
			file: document.File{Name: "blank.pdf", Type: document.TypePDF},
			mock: func(ctrl *gomock.Controller) (document.Service, ai.Service, repository.ResumeRepo) {
				docSvc := docmocks.NewMockService(ctrl)
				docSvc.EXPECT().ExtractText(gomock.Any(), gomock.Any()).
					Return("  \n\t ", nil)
				return docSvc, aimocks.NewMockService(ctrl), repomocks.NewMockResumeRepo(ctrl)
			},
			wantErr: ErrEmptyDocument,
		},
		{
			name: "大模型调用失败",
			cfg:  Config{MaxInput: 10000},
			file: document.File{Name: "tom.pdf", Type: document.TypePDF},
			mock: func(ctrl *gomock.Controller) (document.Service, ai.Service, repository.ResumeRepo) {
				docSvc := docmocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				docSvc.EXPECT().ExtractText(gomock.Any(), gomock.Any()).
					Return("Tom 的简历全文", nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, errors.New("模拟超时"))
				return docSvc, aiSvc, repomocks.NewMockResumeRepo(ctrl)
			},
			wantErr: ErrLLMFailed,
		},
		{
			name: "答案清洗之后不是 JSON",
			cfg:  Config{MaxInput: 10000},
			file: document.File{Name: "tom.pdf", Type: document.TypePDF},
			mock: func(ctrl *gomock.Controller) (document.Service, ai.Service, repository.ResumeRepo) {
				docSvc := docmocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				docSvc.EXPECT().ExtractText(gomock.Any(), gomock.Any()).
					Return("Tom 的简历全文", nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: "对不起，我没法解析这份简历"}, nil)
				return docSvc, aiSvc, repomocks.NewMockResumeRepo(ctrl)
			},
			wantErr: ErrInvalidParseResult,
		},
		{
			name: "落库撞了唯一索引",
			cfg:  Config{MaxInput: 10000},
			file: document.File{Name: "tom.pdf", Type: document.TypePDF},
			mock: func(ctrl *gomock.Controller) (document.Service, ai.Service, repository.ResumeRepo) {
				docSvc := docmocks.NewMockService(ctrl)
				aiSvc := aimocks.NewMockService(ctrl)
				repo := repomocks.NewMockResumeRepo(ctrl)
				docSvc.EXPECT().ExtractText(gomock.Any(), gomock.Any()).
					Return("Tom 的简历全文", nil)
				aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: testAnswer}, nil)
				repo.EXPECT().Save(gomock.Any(), parsed).
					Return(int64(0), repository.ErrResumeDuplicate)
				return docSvc, aiSvc, repo
			},
			wantErr: repository.ErrResumeDuplicate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			docSvc, aiSvc, repo := tc.mock(ctrl)
			svc := NewParseService(docSvc, aiSvc, repo, nopProducer{}, tc.cfg)
			res, err := svc.Parse(context.Background(), tc.file)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestParseService_Parse_SendEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saved := testParsedResume()
	saved.Id = 5

	docSvc := docmocks.NewMockService(ctrl)
	aiSvc := aimocks.NewMockService(ctrl)
	repo := repomocks.NewMockResumeRepo(ctrl)
	producer := evtmocks.NewMockResumeParsedEventProducer(ctrl)

	docSvc.EXPECT().ExtractText(gomock.Any(), gomock.Any()).Return("Tom 的简历全文", nil)
	aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{Answer: testAnswer}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(5), nil)
	repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(saved, nil)

	sent := make(chan event.ResumeParsedEvent, 1)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.ResumeParsedEvent) error {
			sent <- evt
			return nil
		})

	svc := NewParseService(docSvc, aiSvc, repo, producer, Config{MaxInput: 10000})
	_, err := svc.Parse(context.Background(), document.File{Name: "tom.pdf", Type: document.TypePDF})
	require.NoError(t, err)

	select {
	case evt := <-sent:
		assert.Equal(t, int64(5), evt.ResumeId)
		assert.Equal(t, "tom@example.com", evt.Email)
		assert.NotEmpty(t, evt.Tid)
	case <-time.After(time.Second):
		t.Fatal("没有等到简历解析完成事件")
	}
}

//go:build e2e

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/cvhub/internal/ai/internal/domain"
	"github.com/ecodeclub/cvhub/internal/ai/internal/integration/startup"
	"github.com/ecodeclub/cvhub/internal/ai/internal/repository/dao"
	hdlmocks "github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/mocks"
	testioc "github.com/ecodeclub/cvhub/internal/test/ioc"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LLMServiceSuite struct {
	suite.Suite
	db *egorm.Component
}

func TestLLMServiceSuite(t *testing.T) {
	suite.Run(t, new(LLMServiceSuite))
}

func (s *LLMServiceSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	s.NoError(err)
}

func (s *LLMServiceSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `llm_records`").Error
	require.NoError(s.T(), err)
}

func (s *LLMServiceSuite) TestInvoke() {
	t := s.T()
	testCases := []struct {
		name       string
		req        domain.LLMRequest
		before     func(t *testing.T, ctrl *gomock.Controller) *hdlmocks.MockHandler
		assertFunc assert.ErrorAssertionFunc
		after      func(t *testing.T, resp domain.LLMResponse)
	}{
		{
			name: "调用成功-记录成功状态",
			req: domain.LLMRequest{
				Biz:   domain.BizResumeParse,
				Tid:   "21",
				Input: []string{"简历全文"},
				Config: domain.BizConfig{
					Model:          "glm-4",
					PromptTemplate: "请解析下面的简历：%s",
				},
			},
			assertFunc: assert.NoError,
			before: func(t *testing.T, ctrl *gomock.Controller) *hdlmocks.MockHandler {
				llmHdl := hdlmocks.NewMockHandler(ctrl)
				llmHdl.EXPECT().Handle(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{
						Tokens: 100,
						Amount: 100,
						Answer: `{"summary":"资深后端"}`,
					}, nil)
				return llmHdl
			},
			after: func(t *testing.T, resp domain.LLMResponse) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
				defer cancel()
				assert.Equal(t, domain.LLMResponse{
					Tokens: 100,
					Amount: 100,
					Answer: `{"summary":"资深后端"}`,
				}, resp)
				var logModel dao.LLMRecord
				err := s.db.WithContext(ctx).Where("tid = ?", "21").First(&logModel).Error
				require.NoError(t, err)
				assert.True(t, logModel.Id != 0)
				logModel.Id = 0
				s.assertLog(dao.LLMRecord{
					Tid:    "21",
					Biz:    domain.BizResumeParse,
					Tokens: 100,
					Amount: 100,
					Input: sqlx.JsonColumn[[]string]{
						Valid: true,
						Val:   []string{"简历全文"},
					},
					Status:         domain.RecordStatusSuccess.ToUint8(),
					PromptTemplate: sqlx.NewNullString("请解析下面的简历：%s"),
					Answer:         sqlx.NewNullString(`{"summary":"资深后端"}`),
				}, logModel)
			},
		},
		{
			name: "调用失败-记录失败状态",
			req: domain.LLMRequest{
				Biz:   domain.BizResumeParse,
				Tid:   "22",
				Input: []string{"简历全文"},
				Config: domain.BizConfig{
					Model:          "glm-4",
					PromptTemplate: "请解析下面的简历：%s",
				},
			},
			assertFunc: assert.Error,
			before: func(t *testing.T, ctrl *gomock.Controller) *hdlmocks.MockHandler {
				llmHdl := hdlmocks.NewMockHandler(ctrl)
				llmHdl.EXPECT().Handle(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{}, errors.New("调用失败"))
				return llmHdl
			},
			after: func(t *testing.T, resp domain.LLMResponse) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
				defer cancel()
				var logModel dao.LLMRecord
				err := s.db.WithContext(ctx).Where("tid = ?", "22").First(&logModel).Error
				require.NoError(t, err)
				assert.True(t, logModel.Id != 0)
				logModel.Id = 0
				s.assertLog(dao.LLMRecord{
					Tid: "22",
					Biz: domain.BizResumeParse,
					Input: sqlx.JsonColumn[[]string]{
						Valid: true,
						Val:   []string{"简历全文"},
					},
					Status:         domain.RecordStatusFailed.ToUint8(),
					PromptTemplate: sqlx.NewNullString("请解析下面的简历：%s"),
				}, logModel)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
			defer cancel()
			mockHdl := tc.before(t, ctrl)
			mou, err := startup.InitModule(s.db, mockHdl)
			require.NoError(t, err)
			resp, err := mou.Svc.Invoke(ctx, tc.req)
			tc.assertFunc(t, err)
			tc.after(t, resp)
		})
	}
}

func (s *LLMServiceSuite) assertLog(wanted dao.LLMRecord, actual dao.LLMRecord) {
	t := s.T()
	t.Helper()
	assert.True(t, actual.Ctime > 0)
	assert.True(t, actual.Utime > 0)
	actual.Ctime = 0
	actual.Utime = 0
	assert.Equal(t, wanted, actual)
}

package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ecodeclub/cvhub/internal/resume/internal/domain"
	"github.com/ecodeclub/cvhub/internal/resume/internal/repository/dao"
	daomocks "github.com/ecodeclub/cvhub/internal/resume/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResumeRepo_Save(t *testing.T) {
	testCases := []struct {
		name    string
		res     domain.Resume
		mock    func(ctrl *gomock.Controller) dao.ResumeDAO
		wantId  int64
		wantErr error
	}{
		{
			name: "技术标签拼接-空身份键落成 NULL",
			res: domain.Resume{
				Summary: "资深后端",
				PersonalInfo: domain.PersonalInfo{
					Name: "Tom",
				},
				Skills: []string{"Go", "Kubernetes"},
				Projects: []domain.Project{
					{
						Name:         "网关",
						Technologies: []string{"Go", "Kafka"},
					},
				},
			},
			mock: func(ctrl *gomock.Controller) dao.ResumeDAO {
				d := daomocks.NewMockResumeDAO(ctrl)
				d.EXPECT().Save(gomock.Any(),
					dao.Resume{Summary: "资深后端"},
					dao.PersonalInfo{Name: "Tom"},
					[]dao.WorkExperience{},
					[]dao.Project{
						{
							Name: "网关",
							// 逗号拼接，不带空格
							Technologies: "Go,Kafka",
						},
					},
					[]dao.Education{},
					[]string{"Go", "Kubernetes"},
				).Return(int64(3), nil)
				return d
			},
			wantId: 3,
		},
		{
			name: "身份键转成可空列",
			res: domain.Resume{
				PersonalInfo: domain.PersonalInfo{
					Name:  "Tom",
					Email: "tom@example.com",
					Phone: "13888888888",
				},
			},
			mock: func(ctrl *gomock.Controller) dao.ResumeDAO {
				d := daomocks.NewMockResumeDAO(ctrl)
				d.EXPECT().Save(gomock.Any(),
					dao.Resume{},
					dao.PersonalInfo{
						Name:  "Tom",
						Email: sql.NullString{String: "tom@example.com", Valid: true},
						Phone: sql.NullString{String: "13888888888", Valid: true},
					},
					[]dao.WorkExperience{},
					[]dao.Project{},
					[]dao.Education{},
					nil,
				).Return(int64(1), nil)
				return d
			},
			wantId: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewResumeRepo(tc.mock(ctrl))
			id, err := repo.Save(context.Background(), tc.res)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestResumeRepo_FindById(t *testing.T) {
	testCases := []struct {
		name    string
		id      int64
		mock    func(ctrl *gomock.Controller) dao.ResumeDAO
		want    domain.Resume
		wantErr error
	}{
		{
			name: "完整聚合-技术标签拆开并去掉空白",
			id:   5,
			mock: func(ctrl *gomock.Controller) dao.ResumeDAO {
				d := daomocks.NewMockResumeDAO(ctrl)
				d.EXPECT().FindById(gomock.Any(), int64(5)).
					Return(dao.Resume{Id: 5, Summary: "资深后端"}, nil)
				d.EXPECT().BatchFindPersonal(gomock.Any(), []int64{5}).
					Return(map[int64]dao.PersonalInfo{
						5: {
							Id:       9,
							ResumeId: 5,
							Name:     "Tom",
							Email:    sql.NullString{String: "tom@example.com", Valid: true},
						},
					}, nil)
				d.EXPECT().BatchFindExperiences(gomock.Any(), []int64{5}).
					Return(map[int64][]dao.WorkExperience{
						5: {
							{Id: 1, ResumeId: 5, Company: "Acme", JobTitle: "后端工程师"},
						},
					}, nil)
				d.EXPECT().BatchFindProjects(gomock.Any(), []int64{5}).
					Return(map[int64][]dao.Project{
						5: {
							{Id: 2, ResumeId: 5, Name: "网关", Technologies: " Go , Kafka ,"},
						},
					}, nil)
				d.EXPECT().BatchFindEducations(gomock.Any(), []int64{5}).
					Return(map[int64][]dao.Education{}, nil)
				d.EXPECT().BatchFindSkills(gomock.Any(), []int64{5}).
					Return(map[int64][]dao.Skill{
						5: {
							{Id: 1, Name: "Go"},
							{Id: 2, Name: "Kafka"},
						},
					}, nil)
				return d
			},
			want: domain.Resume{
				Id:      5,
				Summary: "资深后端",
				PersonalInfo: domain.PersonalInfo{
					Name:  "Tom",
					Email: "tom@example.com",
				},
				Skills: []string{"Go", "Kafka"},
				WorkExperiences: []domain.WorkExperience{
					{Id: 1, Company: "Acme", JobTitle: "后端工程师"},
				},
				Projects: []domain.Project{
					{Id: 2, Name: "网关", Technologies: []string{"Go", "Kafka"}},
				},
				Educations: []domain.Education{},
			},
		},
		{
			name: "简历不存在",
			id:   100,
			mock: func(ctrl *gomock.Controller) dao.ResumeDAO {
				d := daomocks.NewMockResumeDAO(ctrl)
				d.EXPECT().FindById(gomock.Any(), int64(100)).
					Return(dao.Resume{}, dao.ErrDataNotFound)
				return d
			},
			wantErr: ErrResumeNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewResumeRepo(tc.mock(ctrl))
			res, err := repo.FindById(context.Background(), tc.id)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

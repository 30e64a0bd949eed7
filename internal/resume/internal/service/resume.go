package service

import (
	"context"

	"github.com/ecodeclub/cvhub/internal/resume/internal/domain"
	"github.com/ecodeclub/cvhub/internal/resume/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrResumeNotFound  = repository.ErrResumeNotFound
	ErrResumeDuplicate = repository.ErrResumeDuplicate
)

//go:generate mockgen -source=./resume.go -package=svcmocks -destination=./mocks/resume.mock.go Service
type Service interface {
	Detail(ctx context.Context, id int64) (domain.Resume, error)
	// SearchByEmail 精确匹配，找不到和 Detail 一样报没找到
	SearchByEmail(ctx context.Context, email string) (domain.Resume, error)
	// List 返回一页简历和总数，limit <= 0 表示全量
	List(ctx context.Context, offset, limit int) ([]domain.Resume, int64, error)
	Delete(ctx context.Context, id int64) error
	// SkillNames 共享技能池里的全部技能名
	SkillNames(ctx context.Context) ([]string, error)
}

type service struct {
	repo repository.ResumeRepo
}

func NewService(repo repository.ResumeRepo) Service {
	return &service{repo: repo}
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Resume, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) SearchByEmail(ctx context.Context, email string) (domain.Resume, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Resume, int64, error) {
	var (
		eg    errgroup.Group
		rs    []domain.Resume
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return rs, total, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) SkillNames(ctx context.Context) ([]string, error) {
	return s.repo.SkillNames(ctx)
}

package repository

import (
	"context"
	"strings"

	"github.com/ecodeclub/cvhub/internal/resume/internal/domain"
	"github.com/ecodeclub/cvhub/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrResumeNotFound  = dao.ErrDataNotFound
	ErrResumeDuplicate = dao.ErrResumeDuplicate
)

//go:generate mockgen -source=./resume.go -package=repomocks -destination=./mocks/resume.mock.go ResumeRepo
type ResumeRepo interface {
	// Save 按身份键（email 优先，phone 兜底）整体替换或者新建，返回简历 id
	Save(ctx context.Context, res domain.Resume) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Resume, error)
	FindByEmail(ctx context.Context, email string) (domain.Resume, error)
	// List limit <= 0 表示不分页
	List(ctx context.Context, offset, limit int) ([]domain.Resume, error)
	Total(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	// SkillNames 共享技能池里的全部技能名
	SkillNames(ctx context.Context) ([]string, error)
}

type resumeRepo struct {
	dao dao.ResumeDAO
}

func NewResumeRepo(d dao.ResumeDAO) ResumeRepo {
	return &resumeRepo{dao: d}
}

func (r *resumeRepo) Save(ctx context.Context, res domain.Resume) (int64, error) {
	exps := slice.Map(res.WorkExperiences, func(idx int, src domain.WorkExperience) dao.WorkExperience {
		return r.toExperienceEntity(src)
	})
	prjs := slice.Map(res.Projects, func(idx int, src domain.Project) dao.Project {
		return r.toProjectEntity(src)
	})
	edus := slice.Map(res.Educations, func(idx int, src domain.Education) dao.Education {
		return r.toEducationEntity(src)
	})
	// 技能在写路径上本来就是名字列表，原样透传
	id, err := r.dao.Save(ctx, r.toEntity(res), r.toPersonalEntity(res.PersonalInfo),
		exps, prjs, edus, res.Skills)
	return id, errors.Wrap(err, "按身份键保存简历失败")
}

func (r *resumeRepo) FindById(ctx context.Context, id int64) (domain.Resume, error) {
	re, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Resume{}, err
	}
	rs, err := r.assemble(ctx, []dao.Resume{re})
	if err != nil {
		return domain.Resume{}, err
	}
	return rs[0], nil
}

func (r *resumeRepo) FindByEmail(ctx context.Context, email string) (domain.Resume, error) {
	pi, err := r.dao.FindPersonalByEmail(ctx, email)
	if err != nil {
		return domain.Resume{}, err
	}
	return r.FindById(ctx, pi.ResumeId)
}

func (r *resumeRepo) List(ctx context.Context, offset, limit int) ([]domain.Resume, error) {
	rs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.assemble(ctx, rs)
}

func (r *resumeRepo) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *resumeRepo) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *resumeRepo) SkillNames(ctx context.Context) ([]string, error) {
	sks, err := r.dao.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	return r.toSkillNames(sks), nil
}

// assemble 把主表记录补全成完整聚合，五个子表并发去查
func (r *resumeRepo) assemble(ctx context.Context, rs []dao.Resume) ([]domain.Resume, error) {
	if len(rs) == 0 {
		return []domain.Resume{}, nil
	}
	rids := slice.Map(rs, func(idx int, src dao.Resume) int64 {
		return src.Id
	})
	var eg errgroup.Group
	var piMap map[int64]dao.PersonalInfo
	var expMap map[int64][]dao.WorkExperience
	var prjMap map[int64][]dao.Project
	var eduMap map[int64][]dao.Education
	var skillMap map[int64][]dao.Skill
	eg.Go(func() error {
		var eerr error
		piMap, eerr = r.dao.BatchFindPersonal(ctx, rids)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		expMap, eerr = r.dao.BatchFindExperiences(ctx, rids)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		prjMap, eerr = r.dao.BatchFindProjects(ctx, rids)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		eduMap, eerr = r.dao.BatchFindEducations(ctx, rids)
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		skillMap, eerr = r.dao.BatchFindSkills(ctx, rids)
		return eerr
	})
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "补全简历聚合失败")
	}
	return slice.Map(rs, func(idx int, src dao.Resume) domain.Resume {
		res := domain.Resume{
			Id:           src.Id,
			Summary:      src.Summary,
			PersonalInfo: r.toPersonalDomain(piMap[src.Id]),
			Skills:       r.toSkillNames(skillMap[src.Id]),
		}
		res.WorkExperiences = slice.Map(expMap[src.Id], func(idx int, src dao.WorkExperience) domain.WorkExperience {
			return r.toExperienceDomain(src)
		})
		res.Projects = slice.Map(prjMap[src.Id], func(idx int, src dao.Project) domain.Project {
			return r.toProjectDomain(src)
		})
		res.Educations = slice.Map(eduMap[src.Id], func(idx int, src dao.Education) domain.Education {
			return r.toEducationDomain(src)
		})
		return res
	}), nil
}

func (r *resumeRepo) toEntity(res domain.Resume) dao.Resume {
	return dao.Resume{
		Id:      res.Id,
		Summary: res.Summary,
	}
}

func (r *resumeRepo) toPersonalEntity(pi domain.PersonalInfo) dao.PersonalInfo {
	return dao.PersonalInfo{
		Name: pi.Name,
		// 空字符串落成 NULL，既不参与身份匹配，也不占唯一索引
		Email:    sqlx.NewNullString(pi.Email),
		Phone:    sqlx.NewNullString(pi.Phone),
		Location: pi.Location,
		LinkedIn: pi.LinkedIn,
	}
}

func (r *resumeRepo) toExperienceEntity(exp domain.WorkExperience) dao.WorkExperience {
	return dao.WorkExperience{
		Id:          exp.Id,
		Company:     exp.Company,
		JobTitle:    exp.JobTitle,
		StartDate:   exp.StartDate,
		EndDate:     exp.EndDate,
		Description: exp.Description,
	}
}

func (r *resumeRepo) toProjectEntity(prj domain.Project) dao.Project {
	return dao.Project{
		Id:           prj.Id,
		Name:         prj.Name,
		Description:  prj.Description,
		Technologies: r.joinTechnologies(prj.Technologies),
	}
}

func (r *resumeRepo) toEducationEntity(edu domain.Education) dao.Education {
	return dao.Education{
		Id:          edu.Id,
		Institution: edu.Institution,
		Degree:      edu.Degree,
		EndDate:     edu.EndDate,
	}
}

func (r *resumeRepo) toPersonalDomain(pi dao.PersonalInfo) domain.PersonalInfo {
	return domain.PersonalInfo{
		Name:     pi.Name,
		Email:    pi.Email.String,
		Phone:    pi.Phone.String,
		Location: pi.Location,
		LinkedIn: pi.LinkedIn,
	}
}

func (r *resumeRepo) toExperienceDomain(exp dao.WorkExperience) domain.WorkExperience {
	return domain.WorkExperience{
		Id:          exp.Id,
		Company:     exp.Company,
		JobTitle:    exp.JobTitle,
		StartDate:   exp.StartDate,
		EndDate:     exp.EndDate,
		Description: exp.Description,
	}
}

func (r *resumeRepo) toProjectDomain(prj dao.Project) domain.Project {
	return domain.Project{
		Id:           prj.Id,
		Name:         prj.Name,
		Description:  prj.Description,
		Technologies: r.splitTechnologies(prj.Technologies),
	}
}

func (r *resumeRepo) toEducationDomain(edu dao.Education) domain.Education {
	return domain.Education{
		Id:          edu.Id,
		Institution: edu.Institution,
		Degree:      edu.Degree,
		EndDate:     edu.EndDate,
	}
}

// toSkillNames 读路径的技能转换，把技能实体压成名字列表。
// 写路径没有对应的转换，domain 里的技能本来就是名字
func (r *resumeRepo) toSkillNames(sks []dao.Skill) []string {
	return slice.Map(sks, func(idx int, src dao.Skill) string {
		return src.Name
	})
}

// joinTechnologies 入库的时候拼成逗号分隔，不带空格
func (r *resumeRepo) joinTechnologies(ts []string) string {
	return strings.Join(ts, ",")
}

// splitTechnologies 读出来按逗号拆开，去掉首尾空白，丢弃空串
func (r *resumeRepo) splitTechnologies(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			ts = append(ts, p)
		}
	}
	return ts
}

package dao

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrResumeDuplicate 唯一索引冲突，
// 典型场景是并发场景下两个请求抢同一个 email 或者 phone
var ErrResumeDuplicate = errors.New("简历数据冲突")

//go:generate mockgen -source=./resume.go -package=daomocks -destination=./mocks/resume.mock.go ResumeDAO
type ResumeDAO interface {
	// Save 按身份键落库，找得到就整体替换，找不到就新建，
	// 返回简历 id
	Save(ctx context.Context, r Resume, pi PersonalInfo,
		exps []WorkExperience, prjs []Project, edus []Education,
		skillNames []string) (int64, error)

	FindById(ctx context.Context, id int64) (Resume, error)
	FindPersonalByEmail(ctx context.Context, email string) (PersonalInfo, error)
	// List limit <= 0 表示不分页，全量返回
	List(ctx context.Context, offset, limit int) ([]Resume, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error

	BatchFindPersonal(ctx context.Context, rids []int64) (map[int64]PersonalInfo, error)
	BatchFindExperiences(ctx context.Context, rids []int64) (map[int64][]WorkExperience, error)
	BatchFindProjects(ctx context.Context, rids []int64) (map[int64][]Project, error)
	BatchFindEducations(ctx context.Context, rids []int64) (map[int64][]Education, error)
	BatchFindSkills(ctx context.Context, rids []int64) (map[int64][]Skill, error)

	ListSkills(ctx context.Context) ([]Skill, error)
}

type GORMResumeDAO struct {
	db *egorm.Component
}

func NewGORMResumeDAO(db *egorm.Component) ResumeDAO {
	return &GORMResumeDAO{db: db}
}

func (d *GORMResumeDAO) Save(ctx context.Context, r Resume, pi PersonalInfo,
	exps []WorkExperience, prjs []Project, edus []Education,
	skillNames []string) (int64, error) {
	var rid int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		target, found, err := d.findTarget(tx, pi)
		if err != nil {
			return err
		}
		if found {
			rid = target.ResumeId
			err = d.replaceExisting(tx, now, target, r, pi)
		} else {
			rid, err = d.createNew(tx, now, r, pi)
		}
		if err != nil {
			return err
		}
		return d.appendSections(tx, now, rid, exps, prjs, edus, skillNames)
	})
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrResumeDuplicate
			}
		}
		return 0, err
	}
	return rid, nil
}

// findTarget 身份解析：先按 email 找，找不到再按 phone 找。
// 空值不参与匹配，两个都没命中就走新建
func (d *GORMResumeDAO) findTarget(tx *gorm.DB, pi PersonalInfo) (PersonalInfo, bool, error) {
	var target PersonalInfo
	if pi.Email.Valid {
		err := tx.Where("email = ?", pi.Email.String).First(&target).Error
		if err == nil {
			return target, true, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return PersonalInfo{}, false, err
		}
	}
	if pi.Phone.Valid {
		err := tx.Where("phone = ?", pi.Phone.String).First(&target).Error
		if err == nil {
			return target, true, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return PersonalInfo{}, false, err
		}
	}
	return PersonalInfo{}, false, nil
}

// replaceExisting 更新路径：清掉全部子表数据和技能关联，
// summary 和个人信息逐字段无条件覆盖，缺失的新值也照样覆盖旧值
func (d *GORMResumeDAO) replaceExisting(tx *gorm.DB, now int64, target PersonalInfo, r Resume, pi PersonalInfo) error {
	rid := target.ResumeId
	err := tx.Where("resume_id = ?", rid).Delete(&WorkExperience{}).Error
	if err != nil {
		return err
	}
	err = tx.Where("resume_id = ?", rid).Delete(&Project{}).Error
	if err != nil {
		return err
	}
	err = tx.Where("resume_id = ?", rid).Delete(&Education{}).Error
	if err != nil {
		return err
	}
	// 只解除关联，技能池本身不动
	err = tx.Where("resume_id = ?", rid).Delete(&ResumeSkill{}).Error
	if err != nil {
		return err
	}
	err = tx.Model(&Resume{}).Where("id = ?", rid).
		Updates(map[string]any{
			"summary": r.Summary,
			"utime":   now,
		}).Error
	if err != nil {
		return err
	}
	return tx.Model(&PersonalInfo{}).Where("id = ?", target.Id).
		Updates(map[string]any{
			"name":     pi.Name,
			"email":    pi.Email,
			"phone":    pi.Phone,
			"location": pi.Location,
			"linkedin": pi.LinkedIn,
			"utime":    now,
		}).Error
}

func (d *GORMResumeDAO) createNew(tx *gorm.DB, now int64, r Resume, pi PersonalInfo) (int64, error) {
	r.Ctime = now
	r.Utime = now
	if err := tx.Create(&r).Error; err != nil {
		return 0, err
	}
	pi.ResumeId = r.Id
	pi.Ctime = now
	pi.Utime = now
	if err := tx.Create(&pi).Error; err != nil {
		return 0, err
	}
	return r.Id, nil
}

// appendSections 两条路径共用的尾巴：子表按输入顺序整批插入，
// 技能按名字找或建，重名靠关联表唯一索引自然收敛
func (d *GORMResumeDAO) appendSections(tx *gorm.DB, now int64, rid int64,
	exps []WorkExperience, prjs []Project, edus []Education, skillNames []string) error {
	for i := range exps {
		exps[i].Id = 0
		exps[i].ResumeId = rid
		exps[i].Ctime = now
		exps[i].Utime = now
	}
	if len(exps) > 0 {
		if err := tx.Create(&exps).Error; err != nil {
			return err
		}
	}
	for i := range prjs {
		prjs[i].Id = 0
		prjs[i].ResumeId = rid
		prjs[i].Ctime = now
		prjs[i].Utime = now
	}
	if len(prjs) > 0 {
		if err := tx.Create(&prjs).Error; err != nil {
			return err
		}
	}
	for i := range edus {
		edus[i].Id = 0
		edus[i].ResumeId = rid
		edus[i].Ctime = now
		edus[i].Utime = now
	}
	if len(edus) > 0 {
		if err := tx.Create(&edus).Error; err != nil {
			return err
		}
	}
	for _, name := range skillNames {
		sk, err := d.getOrCreateSkill(tx, now, name)
		if err != nil {
			return err
		}
		link := ResumeSkill{
			ResumeId: rid,
			SkillId:  sk.Id,
			Ctime:    now,
			Utime:    now,
		}
		err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *GORMResumeDAO) getOrCreateSkill(tx *gorm.DB, now int64, name string) (Skill, error) {
	var sk Skill
	err := tx.Where("name = ?", name).First(&sk).Error
	if err == nil {
		return sk, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Skill{}, err
	}
	sk = Skill{
		Name:  name,
		Ctime: now,
		Utime: now,
	}
	err = tx.Create(&sk).Error
	return sk, err
}

func (d *GORMResumeDAO) FindById(ctx context.Context, id int64) (Resume, error) {
	var r Resume
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (d *GORMResumeDAO) FindPersonalByEmail(ctx context.Context, email string) (PersonalInfo, error) {
	var pi PersonalInfo
	err := d.db.WithContext(ctx).Where("email = ?", email).First(&pi).Error
	return pi, err
}

func (d *GORMResumeDAO) List(ctx context.Context, offset, limit int) ([]Resume, error) {
	var rs []Resume
	query := d.db.WithContext(ctx).Model(&Resume{}).
		Order("id asc").
		Offset(offset)
	switch {
	case limit > 0:
		query = query.Limit(limit)
	case offset > 0:
		// MySQL 的 OFFSET 必须跟着 LIMIT，
		// 全量取尾部的时候用一个足够大的上限兜底
		query = query.Limit(math.MaxInt64 >> 1)
	}
	err := query.Find(&rs).Error
	return rs, err
}

func (d *GORMResumeDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Resume{}).Count(&count).Error
	return count, err
}

// Delete 删简历和它独占的子表数据，共享的技能池保持不动
func (d *GORMResumeDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&Resume{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected <= 0 {
			return ErrDataNotFound
		}
		err := tx.Where("resume_id = ?", id).Delete(&PersonalInfo{}).Error
		if err != nil {
			return err
		}
		err = tx.Where("resume_id = ?", id).Delete(&WorkExperience{}).Error
		if err != nil {
			return err
		}
		err = tx.Where("resume_id = ?", id).Delete(&Project{}).Error
		if err != nil {
			return err
		}
		err = tx.Where("resume_id = ?", id).Delete(&Education{}).Error
		if err != nil {
			return err
		}
		return tx.Where("resume_id = ?", id).Delete(&ResumeSkill{}).Error
	})
}

func (d *GORMResumeDAO) BatchFindPersonal(ctx context.Context, rids []int64) (map[int64]PersonalInfo, error) {
	var pis []PersonalInfo
	err := d.db.WithContext(ctx).Where("resume_id in ?", rids).Find(&pis).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]PersonalInfo, len(pis))
	for _, pi := range pis {
		res[pi.ResumeId] = pi
	}
	return res, nil
}

func (d *GORMResumeDAO) BatchFindExperiences(ctx context.Context, rids []int64) (map[int64][]WorkExperience, error) {
	var exps []WorkExperience
	err := d.db.WithContext(ctx).Where("resume_id in ?", rids).
		Order("id asc").Find(&exps).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]WorkExperience, len(rids))
	for _, exp := range exps {
		res[exp.ResumeId] = append(res[exp.ResumeId], exp)
	}
	return res, nil
}

func (d *GORMResumeDAO) BatchFindProjects(ctx context.Context, rids []int64) (map[int64][]Project, error) {
	var prjs []Project
	err := d.db.WithContext(ctx).Where("resume_id in ?", rids).
		Order("id asc").Find(&prjs).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]Project, len(rids))
	for _, prj := range prjs {
		res[prj.ResumeId] = append(res[prj.ResumeId], prj)
	}
	return res, nil
}

func (d *GORMResumeDAO) BatchFindEducations(ctx context.Context, rids []int64) (map[int64][]Education, error) {
	var edus []Education
	err := d.db.WithContext(ctx).Where("resume_id in ?", rids).
		Order("id asc").Find(&edus).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]Education, len(rids))
	for _, edu := range edus {
		res[edu.ResumeId] = append(res[edu.ResumeId], edu)
	}
	return res, nil
}

// BatchFindSkills 先查关联表再查技能池，按关联建立的先后还原顺序
func (d *GORMResumeDAO) BatchFindSkills(ctx context.Context, rids []int64) (map[int64][]Skill, error) {
	var links []ResumeSkill
	err := d.db.WithContext(ctx).Where("resume_id in ?", rids).
		Order("id asc").Find(&links).Error
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return map[int64][]Skill{}, nil
	}
	skillIds := make([]int64, 0, len(links))
	for _, link := range links {
		skillIds = append(skillIds, link.SkillId)
	}
	var skills []Skill
	err = d.db.WithContext(ctx).Where("id in ?", skillIds).Find(&skills).Error
	if err != nil {
		return nil, err
	}
	skillMap := make(map[int64]Skill, len(skills))
	for _, sk := range skills {
		skillMap[sk.Id] = sk
	}
	res := make(map[int64][]Skill, len(rids))
	for _, link := range links {
		if sk, ok := skillMap[link.SkillId]; ok {
			res[link.ResumeId] = append(res[link.ResumeId], sk)
		}
	}
	return res, nil
}

func (d *GORMResumeDAO) ListSkills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	err := d.db.WithContext(ctx).Order("id asc").Find(&skills).Error
	return skills, err
}

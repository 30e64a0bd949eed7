package dao

import "database/sql"

// 简历主表，子表都拿 resume_id 关联
type Resume struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Summary string `gorm:"type:text"`
	Ctime   int64
	Utime   int64
}

// 个人信息，和简历一比一。
// email 和 phone 是身份键，空值存 NULL 才不会撞唯一索引，
// 用 utf8mb4_bin 保证查找是区分大小写的精确匹配
type PersonalInfo struct {
	Id       int64          `gorm:"primaryKey;autoIncrement"`
	ResumeId int64          `gorm:"not null;uniqueIndex:unq_resume_id;comment:一份简历只有一条个人信息"`
	Name     string         `gorm:"type:varchar(512)"`
	Email    sql.NullString `gorm:"type:varchar(512) collate utf8mb4_bin;unique"`
	Phone    sql.NullString `gorm:"type:varchar(128) collate utf8mb4_bin;unique"`
	Location string         `gorm:"type:varchar(512)"`
	LinkedIn string         `gorm:"column:linkedin;type:varchar(512)"`
	Ctime    int64
	Utime    int64
}

type WorkExperience struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	ResumeId int64  `gorm:"not null;index:idx_work_resume_id"`
	Company  string `gorm:"type:varchar(512)"`
	JobTitle string `gorm:"type:varchar(512)"`
	// 起止时间是自由文本，不校验格式
	StartDate   string `gorm:"type:varchar(128)"`
	EndDate     string `gorm:"type:varchar(128)"`
	Description string `gorm:"type:text"`
	Ctime       int64
	Utime       int64
}

type Project struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	ResumeId    int64  `gorm:"not null;index:idx_project_resume_id"`
	Name        string `gorm:"type:varchar(512)"`
	Description string `gorm:"type:text"`
	// 技术标签用逗号拼成一个字段存，读的时候再拆开
	Technologies string `gorm:"type:text"`
	Ctime        int64
	Utime        int64
}

type Education struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	ResumeId    int64  `gorm:"not null;index:idx_education_resume_id"`
	Institution string `gorm:"type:varchar(512)"`
	Degree      string `gorm:"type:varchar(512)"`
	EndDate     string `gorm:"type:varchar(128)"`
	Ctime       int64
	Utime       int64
}

// 技能池，按名字去重，区分大小写。
// 只进不出，哪怕没有任何简历引用也不删
type Skill struct {
	Id    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(512) collate utf8mb4_bin;not null;uniqueIndex:unq_skill_name"`
	Ctime int64
	Utime int64
}

// 简历和技能的多对多关联表
type ResumeSkill struct {
	Id       int64 `gorm:"primaryKey;autoIncrement"`
	ResumeId int64 `gorm:"not null;uniqueIndex:unq_resume_skill"`
	SkillId  int64 `gorm:"not null;uniqueIndex:unq_resume_skill"`
	Ctime    int64
	Utime    int64
}

package domain

// Resume 聚合根，PersonalInfo 和各个子列表随简历一起创建和删除，
// Skills 引用的是全局共享的技能池
type Resume struct {
	Id      int64
	Summary string

	PersonalInfo PersonalInfo
	// 技能名列表，对外永远是名字，不暴露技能池里的 id
	Skills          []string
	WorkExperiences []WorkExperience
	Projects        []Project
	Educations      []Education
}

// PersonalInfo 个人信息，一份简历只有一条。
// 空字符串表示缺失，email 和 phone 是身份键
type PersonalInfo struct {
	Name     string
	Email    string
	Phone    string
	Location string
	LinkedIn string
}

type WorkExperience struct {
	Id       int64
	Company  string
	JobTitle string
	// 起止时间是自由文本，常见的形如 2021-06 或者 Present，不做解析
	StartDate   string
	EndDate     string
	Description string
}

type Project struct {
	Id          int64
	Name        string
	Description string
	// 项目用到的技术标签
	Technologies []string
}

type Education struct {
	Id          int64
	Institution string
	Degree      string
	EndDate     string
}

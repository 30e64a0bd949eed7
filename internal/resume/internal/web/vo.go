package web

import (
	"github.com/ecodeclub/cvhub/internal/resume/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type IDItem struct {
	ID int64 `json:"id"`
}

type SearchReq struct {
	Email string `json:"email"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

// Resume 对外的完整聚合。
// 技能永远是名字列表，项目技术栈永远是列表，
// 不暴露存储里的拼接格式和技能池 id
type Resume struct {
	Id             int64            `json:"id"`
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	Summary        string           `json:"summary,omitempty"`
	Skills         []string         `json:"skills"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Projects       []Project        `json:"projects"`
	Education      []Education      `json:"education"`
}

type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type WorkExperience struct {
	Company     string `json:"company,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}

type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

type ResumeList struct {
	Resumes []Resume `json:"resumes"`
	Total   int64    `json:"total"`
}

type SkillList struct {
	Skills []string `json:"skills"`
}

func newResume(r domain.Resume) Resume {
	return Resume{
		Id:      r.Id,
		Summary: r.Summary,
		PersonalInfo: PersonalInfo{
			Name:     r.PersonalInfo.Name,
			Email:    r.PersonalInfo.Email,
			Phone:    r.PersonalInfo.Phone,
			Location: r.PersonalInfo.Location,
			LinkedIn: r.PersonalInfo.LinkedIn,
		},
		Skills: r.Skills,
		WorkExperience: slice.Map(r.WorkExperiences, func(idx int, src domain.WorkExperience) WorkExperience {
			return WorkExperience{
				Company:     src.Company,
				JobTitle:    src.JobTitle,
				StartDate:   src.StartDate,
				EndDate:     src.EndDate,
				Description: src.Description,
			}
		}),
		Projects: slice.Map(r.Projects, func(idx int, src domain.Project) Project {
			return Project{
				Name:         src.Name,
				Description:  src.Description,
				Technologies: src.Technologies,
			}
		}),
		Education: slice.Map(r.Educations, func(idx int, src domain.Education) Education {
			return Education{
				Institution: src.Institution,
				Degree:      src.Degree,
				EndDate:     src.EndDate,
			}
		}),
	}
}

package event

const ResumeParsedEventName = "resume_parsed_events"

// ResumeParsedEvent 一份简历解析落库之后发出的事件，
// 下游拿 ResumeId 回查完整聚合
type ResumeParsedEvent struct {
	ResumeId int64  `json:"resumeId"`
	Email    string `json:"email"`
	// 这次解析对应的大模型调用记录 id
	Tid string `json:"tid"`
}

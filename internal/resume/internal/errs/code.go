package errs

var (
	SystemError = ErrorCode{Code: 517001, Msg: "系统错误"}
	// UnsupportedFileType 只收 PDF 和 DOCX
	UnsupportedFileType = ErrorCode{Code: 417001, Msg: "不支持的文件类型"}
	EmptyDocument       = ErrorCode{Code: 417002, Msg: "文件内容为空"}
	ResumeNotFound      = ErrorCode{Code: 417003, Msg: "简历未找到"}
	// InvalidParseResult 大模型调用失败，或者返回的内容清洗之后仍然不是合法 JSON
	InvalidParseResult = ErrorCode{Code: 417004, Msg: "简历解析结果不可用"}
	// ResumeDuplicate 唯一索引冲突，典型场景是并发创建抢了同一个 email
	ResumeDuplicate = ErrorCode{Code: 417005, Msg: "简历数据冲突"}
	FileCorrupted   = ErrorCode{Code: 417006, Msg: "文件无法解析"}
	MissingFile     = ErrorCode{Code: 417007, Msg: "缺少 file 字段"}
	FileTooLarge    = ErrorCode{Code: 417008, Msg: "文件太大"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

package web

import (
	"errors"
	"io"

	"github.com/ecodeclub/cvhub/internal/document"
	"github.com/ecodeclub/cvhub/internal/resume/internal/domain"
	"github.com/ecodeclub/cvhub/internal/resume/internal/errs"
	"github.com/ecodeclub/cvhub/internal/resume/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// maxFileSize 上传简历的大小上限
const maxFileSize = 10 << 20

type Handler struct {
	parseSvc service.ParseService
	svc      service.Service
	logger   *elog.Component
}

func NewHandler(parseSvc service.ParseService, svc service.Service) *Handler {
	return &Handler{
		parseSvc: parseSvc,
		svc:      svc,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/resume")
	g.POST("/parse", ginx.W(h.Parse))
	g.POST("/detail", ginx.B[IDItem](h.Detail))
	g.POST("/search", ginx.B[SearchReq](h.SearchByEmail))
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/delete", ginx.B[IDItem](h.Delete))
	g.POST("/skill/list", ginx.W(h.SkillNames))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

// Parse 接收 multipart 上传的简历文件，同步走完提取、大模型解析和落库，
// 把落库之后的完整聚合返回给调用方
func (h *Handler) Parse(ctx *ginx.Context) (ginx.Result, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return ginx.Result{
			Code: errs.MissingFile.Code,
			Msg:  errs.MissingFile.Msg,
		}, nil
	}
	typ, err := document.ParseType(fh.Header.Get("Content-Type"), fh.Filename)
	if err != nil {
		return ginx.Result{
			Code: errs.UnsupportedFileType.Code,
			Msg:  errs.UnsupportedFileType.Msg,
		}, nil
	}
	if fh.Size > maxFileSize {
		return ginx.Result{
			Code: errs.FileTooLarge.Code,
			Msg:  errs.FileTooLarge.Msg,
		}, nil
	}
	f, err := fh.Open()
	if err != nil {
		h.logger.Error("打开上传文件失败", elog.FieldErr(err))
		return systemErrorResult, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		h.logger.Error("读取上传文件失败", elog.FieldErr(err))
		return systemErrorResult, err
	}
	res, err := h.parseSvc.Parse(ctx, document.File{
		Name: fh.Filename,
		Type: typ,
		Data: data,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Data: newResume(res),
		}, nil
	case errors.Is(err, document.ErrUnsupportedFormat):
		return ginx.Result{
			Code: errs.UnsupportedFileType.Code,
			Msg:  errs.UnsupportedFileType.Msg,
		}, nil
	case errors.Is(err, document.ErrCorruptedDocument):
		return ginx.Result{
			Code: errs.FileCorrupted.Code,
			Msg:  errs.FileCorrupted.Msg,
		}, nil
	case errors.Is(err, service.ErrEmptyDocument):
		return ginx.Result{
			Code: errs.EmptyDocument.Code,
			Msg:  errs.EmptyDocument.Msg,
		}, nil
	case errors.Is(err, service.ErrLLMFailed),
		errors.Is(err, service.ErrInvalidParseResult):
		return ginx.Result{
			Code: errs.InvalidParseResult.Code,
			Msg:  errs.InvalidParseResult.Msg,
		}, nil
	case errors.Is(err, service.ErrResumeDuplicate):
		return ginx.Result{
			Code: errs.ResumeDuplicate.Code,
			Msg:  errs.ResumeDuplicate.Msg,
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Detail(ctx *ginx.Context, req IDItem) (ginx.Result, error) {
	res, err := h.svc.Detail(ctx, req.ID)
	switch {
	case errors.Is(err, service.ErrResumeNotFound):
		return ginx.Result{
			Code: errs.ResumeNotFound.Code,
			Msg:  errs.ResumeNotFound.Msg,
		}, nil
	case err == nil:
		return ginx.Result{
			Data: newResume(res),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) SearchByEmail(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	res, err := h.svc.SearchByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, service.ErrResumeNotFound):
		return ginx.Result{
			Code: errs.ResumeNotFound.Code,
			Msg:  errs.ResumeNotFound.Msg,
		}, nil
	case err == nil:
		return ginx.Result{
			Data: newResume(res),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, page Page) (ginx.Result, error) {
	rs, total, err := h.svc.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ResumeList{
			Resumes: slice.Map(rs, func(idx int, src domain.Resume) Resume {
				return newResume(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDItem) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	switch {
	case errors.Is(err, service.ErrResumeNotFound):
		return ginx.Result{
			Code: errs.ResumeNotFound.Code,
			Msg:  errs.ResumeNotFound.Msg,
		}, nil
	case err == nil:
		return ginx.Result{}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) SkillNames(ctx *ginx.Context) (ginx.Result, error) {
	names, err := h.svc.SkillNames(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SkillList{
			Skills: names,
		},
	}, nil
}

package resume

import (
	"github.com/ecodeclub/cvhub/internal/resume/internal/domain"
	"github.com/ecodeclub/cvhub/internal/resume/internal/event"
	"github.com/ecodeclub/cvhub/internal/resume/internal/service"
	"github.com/ecodeclub/cvhub/internal/resume/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type ParseService = service.ParseService
type Resume = domain.Resume
type PersonalInfo = domain.PersonalInfo
type ResumeParsedEvent = event.ResumeParsedEvent

const ResumeParsedEventName = event.ResumeParsedEventName

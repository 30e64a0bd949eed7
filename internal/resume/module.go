package resume

type Module struct {
	Svc      Service
	ParseSvc ParseService
	Hdl      *Handler
}

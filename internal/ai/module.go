package ai

type Module struct {
	Svc Service
}

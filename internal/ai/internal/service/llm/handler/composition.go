package handler

// CompositionHandler 把通用的 Builder 倒序组装到平台 Handler 之上，
// 请求会按照 builders 的顺序依次经过各个环节
type CompositionHandler struct {
	Handler
}

func NewCompositionHandler(common []Builder, platform Handler) *CompositionHandler {
	var root = platform
	for i := len(common) - 1; i >= 0; i-- {
		root = common[i].Next(root)
	}
	return &CompositionHandler{Handler: root}
}

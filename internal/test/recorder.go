package test

import (
	"encoding/json"
	"net/http/httptest"
)

// JSONResponseRecorder 会把响应体按照 Result[T] 解出来，测试里面直接断言
type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() *JSONResponseRecorder[T] {
	return &JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

func (r *JSONResponseRecorder[T]) Scan() (Result[T], error) {
	var res Result[T]
	err := json.NewDecoder(r.Body).Decode(&res)
	return res, err
}

func (r *JSONResponseRecorder[T]) MustScan() Result[T] {
	res, err := r.Scan()
	if err != nil {
		panic(err)
	}
	return res
}

// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package document

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat 不在支持范围内的文件格式
	ErrUnsupportedFormat = errors.New("不支持的文件格式")
	// ErrCorruptedDocument 文件本身损坏，无法提取文本
	ErrCorruptedDocument = errors.New("文件已损坏，无法提取文本")
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type Type uint8

const (
	TypeUnknown Type = iota
	TypePDF
	TypeDOCX
)

func (t Type) String() string {
	switch t {
	case TypePDF:
		return "pdf"
	case TypeDOCX:
		return "docx"
	default:
		return "unknown"
	}
}

// ParseType 根据上传方声明的 Content-Type 判断文件类型，
// 拿不准的时候退回到文件扩展名
func ParseType(contentType, filename string) (Type, error) {
	switch contentType {
	case mimePDF:
		return TypePDF, nil
	case mimeDOCX:
		return TypeDOCX, nil
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return TypePDF, nil
	case ".docx":
		return TypeDOCX, nil
	}
	return TypeUnknown, ErrUnsupportedFormat
}

// File 一份等待提取文本的简历文件
type File struct {
	Name string
	Type Type
	Data []byte
}

//go:generate mockgen -source=./type.go -package=docmocks -destination=./mocks/document.mock.go Service
type Service interface {
	// ExtractText 从文件里面提取纯文本
	ExtractText(ctx context.Context, file File) (string, error)
}

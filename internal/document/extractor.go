package document

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/ledongthuc/pdf"
)

var (
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	blankPattern   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlinePattern = regexp.MustCompile(`\s*\n\s*`)

	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
)

type extractor struct {
	logger *elog.Component
}

func NewService() Service {
	return &extractor{
		logger: elog.DefaultLogger,
	}
}

func (e *extractor) ExtractText(ctx context.Context, file File) (string, error) {
	var (
		text string
		err  error
	)
	switch file.Type {
	case TypePDF:
		text, err = e.extractPDF(file.Data)
	case TypeDOCX:
		text, err = e.extractDOCX(file.Data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, file.Name)
	}
	if err != nil {
		return "", err
	}
	e.logger.Debug("提取文本完成",
		elog.String("file", file.Name),
		elog.Int("chars", len(text)))
	return text, nil
}

func (e *extractor) extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCorruptedDocument, err.Error())
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCorruptedDocument, err.Error())
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("%w: %s", ErrCorruptedDocument, err.Error())
	}
	return normalizeWhitespace(buf.String()), nil
}

// extractDOCX docx 本质上是一个 zip 包，
// 正文全部在 word/document.xml 里面
func (e *extractor) extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCorruptedDocument, err.Error())
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("%w: %s", ErrCorruptedDocument, err.Error())
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", fmt.Errorf("%w: %s", ErrCorruptedDocument, err.Error())
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("%w: 缺少 word/document.xml", ErrCorruptedDocument)
	}
	text := string(docXML)
	// 段落结尾转换行，tab 原样保留
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = tagPattern.ReplaceAllString(text, " ")
	text = entityReplacer.Replace(text)
	return normalizeWhitespace(text), nil
}

// normalizeWhitespace 压缩连续空白，保留换行作为段落分隔
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = blankPattern.ReplaceAllString(s, " ")
	s = newlinePattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

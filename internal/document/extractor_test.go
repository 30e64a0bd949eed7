package document

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		filename    string
		want        Type
		wantErr     error
	}{
		{
			name:        "pdf content type",
			contentType: "application/pdf",
			filename:    "resume.bin",
			want:        TypePDF,
		},
		{
			name:        "docx content type",
			contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			filename:    "resume.bin",
			want:        TypeDOCX,
		},
		{
			name:        "回退到pdf扩展名",
			contentType: "application/octet-stream",
			filename:    "简历.PDF",
			want:        TypePDF,
		},
		{
			name:        "回退到docx扩展名",
			contentType: "",
			filename:    "resume.docx",
			want:        TypeDOCX,
		},
		{
			name:        "都对不上",
			contentType: "text/plain",
			filename:    "resume.txt",
			want:        TypeUnknown,
			wantErr:     ErrUnsupportedFormat,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			typ, err := ParseType(tc.contentType, tc.filename)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, typ)
		})
	}
}

func TestExtractText_DOCX(t *testing.T) {
	testCases := []struct {
		name    string
		data    func(t *testing.T) []byte
		want    string
		wantErr error
	}{
		{
			name: "多段落",
			data: func(t *testing.T) []byte {
				return docxBytes(t, `<w:document><w:body>`+
					`<w:p><w:r><w:t>张三</w:t></w:r></w:p>`+
					`<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>Kafka &amp; MySQL</w:t></w:r></w:p>`+
					`</w:body></w:document>`)
			},
			want: "张三\nGo Kafka & MySQL",
		},
		{
			name: "不是zip",
			data: func(t *testing.T) []byte {
				return []byte("this is not a docx")
			},
			wantErr: ErrCorruptedDocument,
		},
		{
			name: "zip里没有document.xml",
			data: func(t *testing.T) []byte {
				var buf bytes.Buffer
				zw := zip.NewWriter(&buf)
				w, err := zw.Create("word/styles.xml")
				require.NoError(t, err)
				_, err = w.Write([]byte("<w:styles/>"))
				require.NoError(t, err)
				require.NoError(t, zw.Close())
				return buf.Bytes()
			},
			wantErr: ErrCorruptedDocument,
		},
	}

	svc := NewService()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text, err := svc.ExtractText(context.Background(), File{
				Name: "resume.docx",
				Type: TypeDOCX,
				Data: tc.data(t),
			})
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, text)
			}
		})
	}
}

func TestExtractText_PDF(t *testing.T) {
	svc := NewService()
	_, err := svc.ExtractText(context.Background(), File{
		Name: "resume.pdf",
		Type: TypePDF,
		Data: []byte("%PDF-1.4 definitely truncated"),
	})
	assert.ErrorIs(t, err, ErrCorruptedDocument)
}

func TestExtractText_Unsupported(t *testing.T) {
	svc := NewService()
	_, err := svc.ExtractText(context.Background(), File{
		Name: "resume.txt",
		Type: TypeUnknown,
		Data: []byte("plain text"),
	})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNormalizeWhitespace(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "压缩空格",
			input: "a   b\t\tc",
			want:  "a b c",
		},
		{
			name:  "压缩连续换行",
			input: "a\n\n\nb",
			want:  "a\nb",
		},
		{
			name:  "首尾裁剪",
			input: "  \n a \n  ",
			want:  "a",
		},
		{
			name:  "不换行空格",
			input: "a b",
			want:  "a b",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeWhitespace(tc.input))
		})
	}
}

// docxBytes 在内存里拼一个最小可用的 docx
func docxBytes(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

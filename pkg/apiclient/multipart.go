package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"

	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/transport"
)

// File is one part of a multipart upload.
type File struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

// Form is a multipart/form-data payload.
type Form struct {
	Fields map[string]string
	Files  []File
}

// PostMultipart uploads a form. Encoding failures are request setup failures.
func PostMultipart[T any](ctx context.Context, c *Client, path string, form Form, opts ...RequestOption) envelope.Envelope[T] {
	cfg := newRequestConfig(opts)
	req := transport.Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  cfg.query,
		Header: cfg.header,
	}

	body, contentType, err := encodeForm(form)
	if err != nil {
		return fail[T](ctx, c, req, &transport.RequestSetupError{Err: err}, 0)
	}
	req.Body = body
	req.ContentType = contentType

	return execute[T](ctx, c, req, cfg)
}

func encodeForm(form Form) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	keys := make([]string, 0, len(form.Fields))
	for key := range form.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := writer.WriteField(key, form.Fields[key]); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", key, err)
		}
	}

	for _, file := range form.Files {
		field := file.FieldName
		if field == "" {
			field = "file"
		}
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(field), escapeQuotes(file.FileName)))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %s: %w", file.FileName, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", fmt.Errorf("write form file %s: %w", file.FileName, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

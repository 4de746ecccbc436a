package chat

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/query"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

const messageInvalidPack = "Identificador do pedido inválido."

// Service exposes the post-sale conversation of an order or pack.
type Service interface {
	Messages(ctx context.Context, packID string, filter MessagesFilter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Message]]
	Send(ctx context.Context, packID string, input SendInput, opts ...apiclient.RequestOption) envelope.Envelope[Message]
	UploadAttachment(ctx context.Context, packID string, up Upload, opts ...apiclient.RequestOption) envelope.Envelope[Attachment]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

func (s *service) Messages(ctx context.Context, packID string, filter MessagesFilter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Message]] {
	id := digitsOnly(packID)
	if id == "" {
		return apiclient.Invalid[envelope.Page[Message]](ctx, s.api, http.MethodGet, messageInvalidPack)
	}

	params := query.Params{
		"page":     query.OmitZero(filter.Page),
		"per_page": query.OmitZero(filter.PerPage),
		"unread":   query.OmitZero(filter.Unread),
	}
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(params.Encode())}, opts...)
	return apiclient.Get[envelope.Page[Message]](ctx, s.api, messagesPath(id), opts...)
}

func (s *service) Send(ctx context.Context, packID string, input SendInput, opts ...apiclient.RequestOption) envelope.Envelope[Message] {
	id := digitsOnly(packID)
	if id == "" {
		return apiclient.Invalid[Message](ctx, s.api, http.MethodPost, messageInvalidPack)
	}
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Message](ctx, s.api, http.MethodPost, validate.Message, fields...)
	}
	return apiclient.Post[Message](ctx, s.api, messagesPath(id), input, opts...)
}

// UploadAttachment checks the file locally and only then sends it as
// multipart form data under the "file" field.
func (s *service) UploadAttachment(ctx context.Context, packID string, up Upload, opts ...apiclient.RequestOption) envelope.Envelope[Attachment] {
	id := digitsOnly(packID)
	if id == "" {
		return apiclient.Invalid[Attachment](ctx, s.api, http.MethodPost, messageInvalidPack)
	}

	contentType, bad := checkUpload(up)
	if bad != nil {
		return apiclient.Invalid[Attachment](ctx, s.api, http.MethodPost, bad.message, bad.field)
	}

	form := apiclient.Form{
		Files: []apiclient.File{{
			FieldName:   "file",
			FileName:    up.FileName,
			ContentType: contentType,
			Content:     up.Content,
		}},
	}
	return apiclient.PostMultipart[Attachment](ctx, s.api, fmt.Sprintf("/v1/chat/packs/%s/attachments", id), form, opts...)
}

func messagesPath(id string) string {
	return fmt.Sprintf("/v1/chat/packs/%s/messages", id)
}

func digitsOnly(id string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return -1
		}
		return r
	}, id)
}

package questions

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

const messageInvalidID = "Pergunta inválida."

type Service interface {
	List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Question]]
	Answer(ctx context.Context, id int64, text string, opts ...apiclient.RequestOption) envelope.Envelope[Question]
	Delete(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[struct{}]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, filter Filter, opts ...apiclient.RequestOption) envelope.Envelope[envelope.Page[Question]] {
	opts = append([]apiclient.RequestOption{apiclient.WithQuery(filter.params().Encode())}, opts...)
	return apiclient.Get[envelope.Page[Question]](ctx, s.api, "/v1/questions", opts...)
}

func (s *service) Answer(ctx context.Context, id int64, text string, opts ...apiclient.RequestOption) envelope.Envelope[Question] {
	if id <= 0 {
		return apiclient.Invalid[Question](ctx, s.api, http.MethodPost, messageInvalidID)
	}
	payload := struct {
		Text string `json:"text" validate:"required,max=2000"`
	}{Text: text}
	if fields := validate.Struct(payload); fields != nil {
		return apiclient.Invalid[Question](ctx, s.api, http.MethodPost, validate.Message, fields...)
	}
	return apiclient.Post[Question](ctx, s.api, fmt.Sprintf("/v1/questions/%d/answer", id), payload, opts...)
}

func (s *service) Delete(ctx context.Context, id int64, opts ...apiclient.RequestOption) envelope.Envelope[struct{}] {
	if id <= 0 {
		return apiclient.Invalid[struct{}](ctx, s.api, http.MethodDelete, messageInvalidID)
	}
	return apiclient.Delete[struct{}](ctx, s.api, fmt.Sprintf("/v1/questions/%d", id), opts...)
}

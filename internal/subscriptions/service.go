package subscriptions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/angelmondragon/sellerdash/pkg/apiclient"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	"github.com/angelmondragon/sellerdash/pkg/validate"
)

// MessageNotFound is returned when the backend has no subscription for the seller.
const MessageNotFound = "Nenhuma assinatura encontrada."

// wrapperKeys are the object keys the backend has been seen to nest a
// subscription list under.
var wrapperKeys = []string{"data", "subscriptions", "items", "results"}

// Service exposes the seller subscription surface.
type Service interface {
	Current(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[Subscription]
	Plans(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[[]Plan]
	Cancel(ctx context.Context, id int64, input CancelInput, opts ...apiclient.RequestOption) envelope.Envelope[Subscription]
}

type service struct {
	api *apiclient.Client
}

func NewService(api *apiclient.Client) Service {
	return &service{api: api}
}

// Current fetches the active subscription. The backend may answer with a bare
// object, a bare list or an object wrapping a list; all collapse to the first
// subscription, and success reflects whether one was found, whatever the
// body's own success flag says. Non-2xx answers pass through unchanged.
func (s *service) Current(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[Subscription] {
	var body []byte
	opts = append(opts[:len(opts):len(opts)], apiclient.WithResponseBody(func(b []byte) { body = b }))

	raw := apiclient.Get[json.RawMessage](ctx, s.api, "/v1/subscriptions/current", opts...)
	if !raw.Success && !answered(raw.Status) {
		return envelope.Retype[json.RawMessage, Subscription](raw)
	}

	return apiclient.Guard(ctx, s.api, "subscriptions.current", func() envelope.Envelope[Subscription] {
		data := raw.Data
		if !raw.Success {
			data = json.RawMessage(gjson.GetBytes(body, "data").Raw)
		}
		sub, ok := normalize(data)
		if !ok {
			return envelope.Fail[Subscription](http.StatusNotFound, http.StatusNotFound, MessageNotFound, nil)
		}
		return envelope.Ok(sub, raw.Message)
	})
}

func normalize(raw json.RawMessage) (Subscription, bool) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return Subscription{}, false
	}

	candidate := gjson.ParseBytes(raw)
	if candidate.IsObject() {
		for _, key := range wrapperKeys {
			if nested := candidate.Get(key); nested.IsArray() {
				candidate = nested
				break
			}
		}
	}
	if candidate.IsArray() {
		items := candidate.Array()
		if len(items) == 0 {
			return Subscription{}, false
		}
		candidate = items[0]
	}
	if !candidate.IsObject() || len(candidate.Map()) == 0 {
		return Subscription{}, false
	}

	var sub Subscription
	if err := json.Unmarshal([]byte(candidate.Raw), &sub); err != nil {
		return Subscription{}, false
	}
	return sub, true
}

func (s *service) Plans(ctx context.Context, opts ...apiclient.RequestOption) envelope.Envelope[[]Plan] {
	return apiclient.Get[[]Plan](ctx, s.api, "/v1/subscriptions/plans", opts...)
}

func (s *service) Cancel(ctx context.Context, id int64, input CancelInput, opts ...apiclient.RequestOption) envelope.Envelope[Subscription] {
	if id <= 0 {
		return apiclient.Invalid[Subscription](ctx, s.api, http.MethodPost, "Assinatura inválida.")
	}
	if fields := validate.Struct(input); fields != nil {
		return apiclient.Invalid[Subscription](ctx, s.api, http.MethodPost, validate.Message, fields...)
	}
	return apiclient.Post[Subscription](ctx, s.api, fmt.Sprintf("/v1/subscriptions/%d/cancel", id), input, opts...)
}

func answered(status int) bool {
	return status >= 200 && status <= 299
}

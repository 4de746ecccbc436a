package controllers

import (
	"net/http"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/internal/questions"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

type answerRequest struct {
	Text string `json:"text"`
}

func QuestionsList(svc questions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "questions")
			return
		}
		page, perPage, ok := pageParams(w, r, logg)
		if !ok {
			return
		}
		q := r.URL.Query()
		filter := questions.Filter{Page: page, PerPage: perPage, Status: q.Get("status"), ListingID: q.Get("listing_id")}
		responses.WriteEnvelope(w, svc.List(r.Context(), filter, upstream(w, r)...))
	}
}

func QuestionsAnswer(svc questions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "questions")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		var body answerRequest
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.Answer(r.Context(), id, body.Text, upstream(w, r)...))
	}
}

func QuestionsDelete(svc questions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "questions")
			return
		}
		id, ok := pathID(w, r, logg)
		if !ok {
			return
		}
		responses.WriteEnvelope(w, svc.Delete(r.Context(), id, upstream(w, r)...))
	}
}

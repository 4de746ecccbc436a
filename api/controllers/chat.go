package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/sellerdash/api/responses"
	"github.com/angelmondragon/sellerdash/api/validators"
	"github.com/angelmondragon/sellerdash/internal/chat"
	"github.com/angelmondragon/sellerdash/pkg/envelope"
	pkgerrors "github.com/angelmondragon/sellerdash/pkg/errors"
	"github.com/angelmondragon/sellerdash/pkg/logger"
)

const (
	uploadFormOverhead = 1 << 20
	messageFileMissing = "Selecione um arquivo para enviar."
)

func ChatMessages(svc chat.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "chat")
			return
		}
		page, perPage, ok := pageParams(w, r, logg)
		if !ok {
			return
		}
		unread, err := validators.ParseQueryBool(r, "unread")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := chat.MessagesFilter{Page: page, PerPage: perPage, Unread: unread}
		responses.WriteEnvelope(w, svc.Messages(r.Context(), chi.URLParam(r, "packID"), filter, upstream(w, r)...))
	}
}

func ChatSend(svc chat.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "chat")
			return
		}
		var body chat.SendInput
		if !decodeBody(w, r, logg, &body) {
			return
		}
		responses.WriteEnvelope(w, svc.Send(r.Context(), chi.URLParam(r, "packID"), body, upstream(w, r)...))
	}
}

// ChatUploadAttachment reads the "file" part; one byte past the size limit is
// kept so the service can reject oversize files with its own message. Bodies
// past the form limit are rejected here with the same message.
func ChatUploadAttachment(svc chat.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			unavailable(w, r, logg, "chat")
			return
		}

		const limit = chat.MaxUploadSize + uploadFormOverhead
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		file, header, err := r.FormFile("file")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || r.ContentLength > limit {
			if file != nil {
				_ = file.Close()
			}
			size := r.ContentLength
			if size <= 0 {
				size = limit + 1
			}
			logg.Warn(logg.WithField(r.Context(), "content_length", r.ContentLength), "chat.upload.too_large")
			responses.WriteEnvelope(w, chat.TooLarge(size))
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, messageFileMissing).
				WithDetails(envelope.ErrorFields{{Key: "file", Error: "campo obrigatório"}}))
			return
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, chat.MaxUploadSize+1))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, messageFileMissing))
			return
		}

		upload := chat.Upload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     content,
			Size:        header.Size,
		}
		responses.WriteEnvelope(w, svc.UploadAttachment(r.Context(), chi.URLParam(r, "packID"), upload, upstream(w, r)...))
	}
}

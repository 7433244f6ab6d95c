package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/dashboard-backend/errs"
	"github.com/devfolio/dashboard-backend/storage"
)

const maxUploadBytes = 10 << 20 // 10MB

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  storage.Uploader
}

func newUploadHandler(uploader storage.Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// upload stores one multipart file and returns its public URL
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewInternalError("uploads are not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		url, uploadErr := h.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if uploadErr != nil {
			h.logger.Error().Err(uploadErr).Str("filename", header.Filename).Msg("Failed to store upload")
			h.responder.WriteError(w, errs.NewInternalError("could not store file"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/dashboard-backend/database"
	"github.com/devfolio/dashboard-backend/errs"
	"github.com/devfolio/dashboard-backend/models"
)

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	aboutRepo *database.AboutRepo
}

func newAboutHandler(aboutRepo *database.AboutRepo) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		aboutRepo: aboutRepo,
	}
}

type aboutInput struct {
	Location   string `json:"location"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	Curriculum string `json:"curriculum"`
}

func (in aboutInput) validate() error {
	switch {
	case in.Location == "":
		return errs.NewMissingRequiredFieldError("location")
	case in.Content == "":
		return errs.NewMissingRequiredFieldError("content")
	case in.Image == "":
		return errs.NewMissingRequiredFieldError("image")
	case in.Curriculum == "":
		return errs.NewMissingRequiredFieldError("curriculum")
	}
	return nil
}

func (h aboutHandler) getAllAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.aboutRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about entries", err))
			return
		}

		h.responder.WriteJSON(w, entries)
	}
}

func (h aboutHandler) createAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input aboutInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode about request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("about", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entry := models.About{
			ID:         uuid.New(),
			Location:   input.Location,
			Content:    input.Content,
			Image:      input.Image,
			Curriculum: input.Curriculum,
		}

		if err := h.aboutRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "about entry", err))
			return
		}

		h.responder.WriteCreated(w, entry)
	}
}

func (h aboutHandler) updateAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aboutID, err := parseIDParam(r, "aboutID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, findErr := h.aboutRepo.FindByID(aboutID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about entry", findErr))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("about entry not found"))
			return
		}

		var input aboutInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode about request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("about", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entry := models.About{
			ID:         aboutID,
			Location:   input.Location,
			Content:    input.Content,
			Image:      input.Image,
			Curriculum: input.Curriculum,
		}

		if err := h.aboutRepo.Update(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "about entry", err))
			return
		}

		updated, err := h.aboutRepo.FindByID(aboutID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "about entry", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h aboutHandler) deleteAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aboutID, err := parseIDParam(r, "aboutID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if deleteErr := h.aboutRepo.Delete(aboutID); deleteErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "about entry", deleteErr))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "about entry deleted successfully",
		})
	}
}

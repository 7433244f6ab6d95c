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

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
}

func newContactHandler(contactRepo *database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

type contactInput struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
	User string `json:"user"`
	Link string `json:"link"`
}

func (in contactInput) validate() error {
	switch {
	case in.Icon == "":
		return errs.NewMissingRequiredFieldError("icon")
	case in.Name == "":
		return errs.NewMissingRequiredFieldError("name")
	case in.User == "":
		return errs.NewMissingRequiredFieldError("user")
	case in.Link == "":
		return errs.NewMissingRequiredFieldError("link")
	}
	return nil
}

func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, contacts)
	}
}

func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input contactInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact := models.Contact{
			ID:   uuid.New(),
			Icon: input.Icon,
			Name: input.Name,
			User: input.User,
			Link: input.Link,
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		h.responder.WriteCreated(w, contact)
	}
}

func (h contactHandler) updateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, findErr := h.contactRepo.FindByID(contactID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", findErr))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact not found"))
			return
		}

		var input contactInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact := models.Contact{
			ID:   contactID,
			Icon: input.Icon,
			Name: input.Name,
			User: input.User,
			Link: input.Link,
		}

		if err := h.contactRepo.Update(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact", err))
			return
		}

		updated, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "contact", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if deleteErr := h.contactRepo.Delete(contactID); deleteErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact", deleteErr))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact deleted successfully",
		})
	}
}

func (h contactHandler) contactSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := h.contactRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "contacts", err))
			return
		}

		lastUpdate, err := h.contactRepo.LatestUpdatedAt()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("summarize", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, summaryResponse{Total: total, LastUpdate: lastUpdate})
	}
}

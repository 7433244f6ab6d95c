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

type techHandler struct {
	responder Responder
	logger    zerolog.Logger
	techRepo  *database.TechRepo
}

func newTechHandler(techRepo *database.TechRepo) techHandler {
	logger := log.With().Str("handlerName", "techHandler").Logger()

	return techHandler{
		responder: NewResponder(logger),
		logger:    logger,
		techRepo:  techRepo,
	}
}

type techInput struct {
	Name string `json:"name"`
}

func (in techInput) validate() error {
	if in.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	return nil
}

func (h techHandler) getAllTechs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		techs, err := h.techRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "techs", err))
			return
		}

		h.responder.WriteJSON(w, techs)
	}
}

func (h techHandler) createTech() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input techInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tech request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("tech", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tech := models.Tech{
			ID:   uuid.New(),
			Name: input.Name,
		}

		if err := h.techRepo.Add(&tech); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "tech", err))
			return
		}

		h.responder.WriteCreated(w, tech)
	}
}

func (h techHandler) updateTech() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		techID, err := parseIDParam(r, "techID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, findErr := h.techRepo.FindByID(techID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tech", findErr))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tech not found"))
			return
		}

		var input techInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode tech request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("tech", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tech := models.Tech{ID: techID, Name: input.Name}

		if err := h.techRepo.Update(&tech); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "tech", err))
			return
		}

		updated, err := h.techRepo.FindByID(techID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "tech", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h techHandler) deleteTech() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		techID, err := parseIDParam(r, "techID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if deleteErr := h.techRepo.Delete(techID); deleteErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "tech", deleteErr))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tech deleted successfully",
		})
	}
}

func (h techHandler) techSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := h.techRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "techs", err))
			return
		}

		lastUpdate, err := h.techRepo.LatestUpdatedAt()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("summarize", "techs", err))
			return
		}

		h.responder.WriteJSON(w, summaryResponse{Total: total, LastUpdate: lastUpdate})
	}
}

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

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

type skillInput struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
}

func (in skillInput) validate() error {
	switch {
	case in.Icon == "":
		return errs.NewMissingRequiredFieldError("icon")
	case in.Name == "":
		return errs.NewMissingRequiredFieldError("name")
	}
	return nil
}

func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input skillInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("skill", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill := models.Skill{
			ID:   uuid.New(),
			Icon: input.Icon,
			Name: input.Name,
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		h.responder.WriteCreated(w, skill)
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, findErr := h.skillRepo.FindByID(skillID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", findErr))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		var input skillInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("skill", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill := models.Skill{ID: skillID, Icon: input.Icon, Name: input.Name}

		if err := h.skillRepo.Update(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		updated, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "skill", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if deleteErr := h.skillRepo.Delete(skillID); deleteErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", deleteErr))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}

func (h skillHandler) skillSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := h.skillRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "skills", err))
			return
		}

		lastUpdate, err := h.skillRepo.LatestUpdatedAt()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("summarize", "skills", err))
			return
		}

		h.responder.WriteJSON(w, summaryResponse{Total: total, LastUpdate: lastUpdate})
	}
}

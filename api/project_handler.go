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

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectTechInput is one (tech, position) pair from the request body. The
// whole list replaces the project's association set on every write.
type projectTechInput struct {
	TechID uuid.UUID `json:"techId"`
	Ordem  int       `json:"ordem"`
}

type projectInput struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	DemoURL     string             `json:"demoUrl"`
	RepoURL     string             `json:"repoUrl"`
	IsFeatured  bool               `json:"isFeatured"`
	Techs       []projectTechInput `json:"techs"`
}

func (in projectInput) validate() error {
	switch {
	case in.Title == "":
		return errs.NewMissingRequiredFieldError("title")
	case in.Description == "":
		return errs.NewMissingRequiredFieldError("description")
	case in.Image == "":
		return errs.NewMissingRequiredFieldError("image")
	case in.DemoURL == "":
		return errs.NewMissingRequiredFieldError("demoUrl")
	case in.RepoURL == "":
		return errs.NewMissingRequiredFieldError("repoUrl")
	case len(in.Techs) == 0:
		return errs.NewMissingRequiredFieldError("techs")
	}
	for _, t := range in.Techs {
		if t.TechID == uuid.Nil {
			return errs.NewInvalidFieldError("techs", "techId must not be empty")
		}
	}
	return nil
}

func (in projectInput) joinRows() []models.ProjectTech {
	rows := make([]models.ProjectTech, len(in.Techs))
	for i, t := range in.Techs {
		rows[i] = models.ProjectTech{TechID: t.TechID, Ordem: t.Ordem}
	}
	return rows
}

// getAllProjects retrieves all projects, newest first, with their ordered techs
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID with its techs
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, findErr := h.projectRepo.FindByID(projectID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", findErr))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project together with its tech associations
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input projectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{
			ID:          uuid.New(),
			Title:       input.Title,
			Description: input.Description,
			Image:       input.Image,
			DemoURL:     input.DemoURL,
			RepoURL:     input.RepoURL,
			IsFeatured:  input.IsFeatured,
		}

		if err := h.projectRepo.Add(&project, input.joinRows()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteCreated(w, created)
	}
}

// updateProject replaces a project's fields and its entire tech association set
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, findErr := h.projectRepo.FindByID(projectID)
		if findErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", findErr))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var input projectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := input.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{
			ID:          projectID,
			Title:       input.Title,
			Description: input.Description,
			Image:       input.Image,
			DemoURL:     input.DemoURL,
			RepoURL:     input.RepoURL,
			IsFeatured:  input.IsFeatured,
		}

		if err := h.projectRepo.Update(&project, input.joinRows()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project and its tech associations; absent ids are a no-op
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if deleteErr := h.projectRepo.Delete(projectID); deleteErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", deleteErr))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// projectSummary reports the project count and the most recent update
func (h projectHandler) projectSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := h.projectRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "projects", err))
			return
		}

		lastUpdate, err := h.projectRepo.LatestUpdatedAt()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("summarize", "projects", err))
			return
		}

		h.responder.WriteJSON(w, summaryResponse{Total: total, LastUpdate: lastUpdate})
	}
}

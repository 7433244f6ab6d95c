package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/dashboard-backend/analytics"
	"github.com/devfolio/dashboard-backend/database"
)

// analyticsHandler serves the chart endpoints. Every response is recomputed
// from the current collection snapshot; collections are small enough that no
// caching is warranted.
type analyticsHandler struct {
	responder       Responder
	logger          zerolog.Logger
	projectRepo     *database.ProjectRepo
	techRepo        *database.TechRepo
	projectTechRepo *database.ProjectTechRepo
}

func newAnalyticsHandler(projectRepo *database.ProjectRepo, techRepo *database.TechRepo, projectTechRepo *database.ProjectTechRepo) analyticsHandler {
	logger := log.With().Str("handlerName", "analyticsHandler").Logger()

	return analyticsHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		projectRepo:     projectRepo,
		techRepo:        techRepo,
		projectTechRepo: projectTechRepo,
	}
}

// projectsOverTime buckets project creation dates by UTC calendar day
func (h analyticsHandler) projectsOverTime() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := h.projectCreationTimes()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, analytics.CountByDay(created))
	}
}

// projectsByMonth buckets project creation dates by UTC calendar month
func (h analyticsHandler) projectsByMonth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := h.projectCreationTimes()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, analytics.CountByMonth(created))
	}
}

// projectsByTech reports how many projects reference each tech, zero included
func (h analyticsHandler) projectsByTech() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		techs, err := h.techRepo.FindAllWithJoins()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "techs", err))
			return
		}

		h.responder.WriteJSON(w, analytics.TechDistributions(techs))
	}
}

// techsMostUsed ranks techs by project references, descending
func (h analyticsHandler) techsMostUsed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		joins, err := h.projectTechRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project techs", err))
			return
		}

		h.responder.WriteJSON(w, analytics.MostUsedTechs(joins))
	}
}

func (h analyticsHandler) projectCreationTimes() ([]time.Time, error) {
	projects, err := h.projectRepo.FindAll()
	if err != nil {
		return nil, wrapDatabaseError("find", "projects", err)
	}

	created := make([]time.Time, len(projects))
	for i, p := range projects {
		created[i] = p.CreatedAt
	}
	return created, nil
}

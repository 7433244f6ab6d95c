package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/dashboard-backend/analytics"
	"github.com/devfolio/dashboard-backend/database"
)

type metaHandler struct {
	responder   Responder
	logger      zerolog.Logger
	aboutRepo   *database.AboutRepo
	projectRepo *database.ProjectRepo
	skillRepo   *database.SkillRepo
	contactRepo *database.ContactRepo
}

func newMetaHandler(aboutRepo *database.AboutRepo, projectRepo *database.ProjectRepo, skillRepo *database.SkillRepo, contactRepo *database.ContactRepo) metaHandler {
	logger := log.With().Str("handlerName", "metaHandler").Logger()

	return metaHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		aboutRepo:   aboutRepo,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		contactRepo: contactRepo,
	}
}

// lastUpdate reports the most recent update across the about, project, skill
// and contact collections; null when every collection is empty.
func (h metaHandler) lastUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates := make([]*time.Time, 0, 4)

		for _, latest := range []func() (*time.Time, error){
			h.aboutRepo.LatestUpdatedAt,
			h.projectRepo.LatestUpdatedAt,
			h.skillRepo.LatestUpdatedAt,
			h.contactRepo.LatestUpdatedAt,
		} {
			t, err := latest()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("summarize", "collections", err))
				return
			}
			candidates = append(candidates, t)
		}

		h.responder.WriteJSON(w, map[string]*time.Time{
			"lastUpdate": analytics.LatestUpdate(candidates...),
		})
	}
}

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/devfolio/dashboard-backend/errs"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	aboutHandler     aboutHandler
	projectHandler   projectHandler
	techHandler      techHandler
	skillHandler     skillHandler
	contactHandler   contactHandler
	analyticsHandler analyticsHandler
	metaHandler      metaHandler
	authHandler      authHandler
	uploadHandler    uploadHandler
}

// summaryResponse is the {total, lastUpdate} payload every collection's
// summary endpoint returns.
type summaryResponse struct {
	Total      int64      `json:"total"`
	LastUpdate *time.Time `json:"lastUpdate"`
}

// parseIDParam reads and parses a UUID path parameter, mapping failures to
// 400 responses.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

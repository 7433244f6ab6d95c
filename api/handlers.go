package api

import (
	"github.com/devfolio/dashboard-backend/auth"
	"github.com/devfolio/dashboard-backend/database"
	"github.com/devfolio/dashboard-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, providers map[string]*auth.OAuthProvider, tokens *auth.TokenService, uploader storage.Uploader, secureCookie bool) *routeHandlers {
	return &routeHandlers{
		aboutHandler:     newAboutHandler(db.AboutRepo()),
		projectHandler:   newProjectHandler(db.ProjectRepo()),
		techHandler:      newTechHandler(db.TechRepo()),
		skillHandler:     newSkillHandler(db.SkillRepo()),
		contactHandler:   newContactHandler(db.ContactRepo()),
		analyticsHandler: newAnalyticsHandler(db.ProjectRepo(), db.TechRepo(), db.ProjectTechRepo()),
		metaHandler:      newMetaHandler(db.AboutRepo(), db.ProjectRepo(), db.SkillRepo(), db.ContactRepo()),
		authHandler:      newAuthHandler(providers, tokens, secureCookie),
		uploadHandler:    newUploadHandler(uploader),
	}
}

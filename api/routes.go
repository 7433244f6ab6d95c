package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Reads and the sign-in flow are public;
// every mutation sits behind the auth gate.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes: reads, analytics and the OAuth flow
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/about", handlers.aboutHandler.getAllAbout())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/summary", handlers.projectHandler.projectSummary())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/techs", handlers.techHandler.getAllTechs())
		r.Get("/techs/summary", handlers.techHandler.techSummary())

		r.Get("/stacks", handlers.skillHandler.getAllSkills())
		r.Get("/stacks/summary", handlers.skillHandler.skillSummary())

		r.Get("/contacts", handlers.contactHandler.getAllContacts())
		r.Get("/contacts/summary", handlers.contactHandler.contactSummary())

		r.Get("/meta/last-update", handlers.metaHandler.lastUpdate())

		r.Get("/analytics/projects-over-time", handlers.analyticsHandler.projectsOverTime())
		r.Get("/analytics/projects-by-month", handlers.analyticsHandler.projectsByMonth())
		r.Get("/analytics/projects-by-tech", handlers.analyticsHandler.projectsByTech())
		r.Get("/analytics/techs-most-used", handlers.analyticsHandler.techsMostUsed())

		r.Get("/auth/{provider}/login", handlers.authHandler.login())
		r.Get("/auth/{provider}/callback", handlers.authHandler.callback())
		r.Post("/auth/logout", handlers.authHandler.logout())
	})

	// Authenticated routes: every mutation
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.requireAuth)

		r.Post("/about", handlers.aboutHandler.createAbout())
		r.Put("/about/{aboutID}", handlers.aboutHandler.updateAbout())
		r.Delete("/about/{aboutID}", handlers.aboutHandler.deleteAbout())

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/techs", handlers.techHandler.createTech())
		r.Put("/techs/{techID}", handlers.techHandler.updateTech())
		r.Delete("/techs/{techID}", handlers.techHandler.deleteTech())

		r.Post("/stacks", handlers.skillHandler.createSkill())
		r.Put("/stacks/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/stacks/{skillID}", handlers.skillHandler.deleteSkill())

		r.Post("/contacts", handlers.contactHandler.createContact())
		r.Put("/contacts/{contactID}", handlers.contactHandler.updateContact())
		r.Delete("/contacts/{contactID}", handlers.contactHandler.deleteContact())

		r.Get("/auth/me", handlers.authHandler.me())

		r.Post("/upload", handlers.uploadHandler.upload())
	})
}

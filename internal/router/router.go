package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/soilhealth-et/portal/api/handler"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Content *apiHandler.ContentHandler
	Layout  *apiHandler.LayoutHandler
	Catalog *apiHandler.CatalogHandler
	Library *apiHandler.LibraryHandler
	Advisor *apiHandler.AdvisorHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, adminOnly func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Public portal surface
	r.GET("/api/v1/content", handlers.Content.Public)
	r.GET("/api/v1/calendar", handlers.Content.Calendar)
	r.POST("/api/v1/advisor/chat", handlers.Advisor.Chat)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)

	// Admin surface
	r.GET("/api/v1/admin/dashboard", adminOnly(handlers.Content.Dashboard))
	r.PUT("/api/v1/admin/branding", adminOnly(handlers.Content.UpdateBranding))
	r.POST("/api/v1/admin/password", adminOnly(handlers.Auth.ChangePassword))
	r.PUT("/api/v1/admin/email", adminOnly(handlers.Auth.UpdateEmail))

	r.POST("/api/v1/admin/sections", adminOnly(handlers.Layout.Create))
	r.POST("/api/v1/admin/sections/move", adminOnly(handlers.Layout.Move))
	r.DELETE("/api/v1/admin/sections/{id}", adminOnly(handlers.Layout.Delete))

	r.POST("/api/v1/admin/districts", adminOnly(handlers.Catalog.CreateDistrict))
	r.PUT("/api/v1/admin/districts/{id}", adminOnly(handlers.Catalog.UpdateDistrict))
	r.DELETE("/api/v1/admin/districts/{id}", adminOnly(handlers.Catalog.DeleteDistrict))

	r.POST("/api/v1/admin/issues", adminOnly(handlers.Catalog.CreateIssue))
	r.PUT("/api/v1/admin/issues/{id}", adminOnly(handlers.Catalog.UpdateIssue))
	r.DELETE("/api/v1/admin/issues/{id}", adminOnly(handlers.Catalog.DeleteIssue))

	r.POST("/api/v1/admin/modules", adminOnly(handlers.Catalog.CreateModule))
	r.PUT("/api/v1/admin/modules/{id}", adminOnly(handlers.Catalog.UpdateModule))
	r.DELETE("/api/v1/admin/modules/{id}", adminOnly(handlers.Catalog.DeleteModule))

	r.POST("/api/v1/admin/documents", adminOnly(handlers.Library.CreateDocument))
	r.POST("/api/v1/admin/documents/upload", adminOnly(handlers.Library.UploadDocument))
	r.PUT("/api/v1/admin/documents/{id}", adminOnly(handlers.Library.UpdateDocument))
	r.DELETE("/api/v1/admin/documents/{id}", adminOnly(handlers.Library.DeleteDocument))

	r.POST("/api/v1/admin/media", adminOnly(handlers.Library.CreateMedia))
	r.POST("/api/v1/admin/media/upload", adminOnly(handlers.Library.UploadMedia))
	r.PUT("/api/v1/admin/media/{id}", adminOnly(handlers.Library.UpdateMedia))
	r.DELETE("/api/v1/admin/media/{id}", adminOnly(handlers.Library.DeleteMedia))

	return r
}

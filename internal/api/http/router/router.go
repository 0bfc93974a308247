package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/NajatBouz/study-organizer/internal/api/http/handler"
	"github.com/NajatBouz/study-organizer/internal/api/http/middleware"
	"github.com/NajatBouz/study-organizer/internal/logger"
	"github.com/NajatBouz/study-organizer/internal/service"
)

// Router wires services into HTTP routes. All per-resource routes sit
// behind the bearer-token middleware; the auth entry points stay public.
type Router struct {
	authService    *service.Auth
	contactService *service.Contacts
	linkService    *service.Links
	eventService   *service.Events
	folderService  *service.Folders
	fileService    *service.Files
	searchService  *service.Search
	tokens         middleware.TokenVerifier
	logger         *logger.Logger
	devMode        bool
	frontendURL    string
}

// New creates new Router instance.
func New(
	authService *service.Auth,
	contactService *service.Contacts,
	linkService *service.Links,
	eventService *service.Events,
	folderService *service.Folders,
	fileService *service.Files,
	searchService *service.Search,
	tokens middleware.TokenVerifier,
	logger *logger.Logger,
	devMode bool,
	frontendURL string,
) *Router {
	return &Router{
		authService:    authService,
		contactService: contactService,
		linkService:    linkService,
		eventService:   eventService,
		folderService:  folderService,
		fileService:    fileService,
		searchService:  searchService,
		tokens:         tokens,
		logger:         logger,
		devMode:        devMode,
		frontendURL:    frontendURL,
	}
}

// Register attaches all routes and middleware to the app.
func (r *Router) Register(app *fiber.App) {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.logger)

	app.Use(logging.Handle)

	api := app.Group("/api")

	authHandler := handler.NewAuth(r.authService, r.logger, r.devMode, r.frontendURL)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/forgot-password", authHandler.ForgotPassword)
	api.Post("/auth/reset-password", authHandler.ResetPassword)
	api.Delete("/auth/me", authenticate.Handle, authHandler.DeleteMe)

	contactHandler := handler.NewContact(r.contactService, r.logger)
	contacts := api.Group("/contacts", authenticate.Handle)
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)

	linkHandler := handler.NewLink(r.linkService, r.logger)
	links := api.Group("/links", authenticate.Handle)
	links.Get("/", linkHandler.List)
	links.Post("/", linkHandler.Create)
	links.Put("/:id", linkHandler.Update)
	links.Delete("/:id", linkHandler.Delete)

	eventHandler := handler.NewEvent(r.eventService, r.logger)
	events := api.Group("/events", authenticate.Handle)
	events.Get("/", eventHandler.List)
	events.Post("/", eventHandler.Create)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)

	folderHandler := handler.NewFolder(r.folderService, r.logger)
	folders := api.Group("/folders", authenticate.Handle)
	folders.Get("/", folderHandler.List)
	folders.Post("/", folderHandler.Create)
	folders.Put("/:id", folderHandler.Update)
	folders.Delete("/:id", folderHandler.Delete)

	fileHandler := handler.NewFile(r.fileService, r.logger)
	files := api.Group("/files", authenticate.Handle)
	files.Get("/folder/:folderId", fileHandler.ListByFolder)
	files.Post("/upload", fileHandler.Upload)
	files.Get("/download/:id", fileHandler.Download)
	files.Delete("/:id", fileHandler.Delete)

	searchHandler := handler.NewSearch(r.searchService, r.logger)
	api.Get("/search", authenticate.Handle, searchHandler.Run)
}

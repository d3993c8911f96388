package handler

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Metadata *MetadataHandler
	Avatar   *AvatarHandler
}

func RegisterRoutes(app *fiber.App, h Handlers, requireAuth fiber.Handler) {
	auth := app.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/token/refresh", h.Auth.Refresh)
	auth.Post("/token/reject", h.Auth.Reject)

	api := app.Group("/api/v1", requireAuth)
	api.Get("/profile", h.Profile.Get)
	api.Put("/profile", h.Profile.Update)
	api.Get("/metadata", h.Metadata.List)
	api.Get("/metadata/:key", h.Metadata.Get)
	api.Post("/metadata/:key", h.Metadata.Create)
	api.Put("/metadata/:key", h.Metadata.Update)
	api.Delete("/metadata/:key", h.Metadata.Delete)
	api.Get("/avatar", h.Avatar.Get)
	api.Put("/avatar", h.Avatar.Update)
}

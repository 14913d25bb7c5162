// Package router builds the HTTP route table.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	articlehandler "cms_backend/internal/feature/articles/transport/handler"
	authhandler "cms_backend/internal/feature/auth/transport/handler"
	contacthandler "cms_backend/internal/feature/contact/transport/handler"
	contenthandler "cms_backend/internal/feature/content/transport/handler"
	documenthandler "cms_backend/internal/feature/documents/transport/handler"
	memberhandler "cms_backend/internal/feature/members/transport/handler"
	projecthandler "cms_backend/internal/feature/projects/transport/handler"
	seedhandler "cms_backend/internal/feature/seed/transport/handler"
	statshandler "cms_backend/internal/feature/stats/transport/handler"
	platformhandler "cms_backend/internal/platform/http/handler"
)

// Handlers bundles every feature handler wired by main.
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Projects  *projecthandler.ProjectHandler
	Articles  *articlehandler.ArticleHandler
	Members   *memberhandler.MemberHandler
	Documents *documenthandler.DocumentHandler
	Contact   *contacthandler.ContactHandler
	Content   *contenthandler.ContentHandler
	Stats     *statshandler.StatsHandler
	Seed      *seedhandler.SeedHandler
}

// New builds the engine. Routes split into three tiers: public, authenticated
// (any valid token) and admin (authenticated + admin role).
func New(h Handlers, authenticated, adminOnly gin.HandlerFunc, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Liveness probe, outside the API prefix.
	r.GET("/healthz", platformhandler.Health)

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CMS backend API"})
	})

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	api.GET("/projects", h.Projects.List)
	api.GET("/projects/:id", h.Projects.Get)
	api.GET("/articles", h.Articles.List)
	api.GET("/articles/:id", h.Articles.Get)
	api.GET("/members", h.Members.List)
	api.POST("/members/apply", h.Members.Apply)
	api.GET("/documents", h.Documents.List)
	api.POST("/contact", h.Contact.Submit)
	api.GET("/content", h.Content.List)
	api.GET("/content/:key", h.Content.Get)
	api.GET("/stats", h.Stats.Public)
	api.POST("/seed", h.Seed.Seed)

	// Any authenticated user
	authed := api.Group("/")
	authed.Use(authenticated)
	{
		authed.GET("/auth/me", h.Auth.Me)
	}

	// Admin only
	admin := api.Group("/")
	admin.Use(authenticated, adminOnly)
	{
		admin.POST("/projects", h.Projects.Create)
		admin.PUT("/projects/:id", h.Projects.Update)
		admin.DELETE("/projects/:id", h.Projects.Delete)

		admin.POST("/articles", h.Articles.Create)
		admin.PUT("/articles/:id", h.Articles.Update)
		admin.DELETE("/articles/:id", h.Articles.Delete)

		admin.GET("/members/pending", h.Members.ListPending)
		admin.PUT("/members/:id/approve", h.Members.Approve)
		admin.PUT("/members/:id/reject", h.Members.Reject)
		admin.DELETE("/members/:id", h.Members.Delete)

		admin.POST("/documents", h.Documents.Create)
		admin.DELETE("/documents/:id", h.Documents.Delete)

		admin.GET("/contact", h.Contact.List)
		admin.PUT("/contact/:id/read", h.Contact.MarkRead)
		admin.DELETE("/contact/:id", h.Contact.Delete)

		admin.PUT("/content", h.Content.Upsert)

		admin.GET("/admin/stats", h.Stats.Admin)
	}

	return r
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/portfolli/backend/internal/api"
	"github.com/portfolli/backend/internal/identity"
	"github.com/portfolli/backend/internal/middleware"
)

// Handlers bundles every route handler the router wires up.
type Handlers struct {
	Health       *api.HealthHandler
	Profiles     *api.ProfileHandler
	Certificates *api.CertificateHandler
	Projects     *api.ProjectHandler
	Posts        *api.PostHandler
	Comments     *api.CommentHandler
	Admin        *api.AdminHandler
}

// Setup configures the application routes. forumLimiter is nil when redis
// is not configured; forum writes then run unthrottled.
func Setup(
	h Handlers,
	verifier identity.Verifier,
	roles middleware.RoleResolver,
	forumLimiter *middleware.RateLimiter,
	clientURL string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(clientURL))

	authed := middleware.AuthMiddleware(verifier)
	admin := middleware.AdminMiddleware(roles)

	throttled := func(c *gin.Context) { c.Next() }
	if forumLimiter != nil {
		throttled = forumLimiter.Middleware()
	}

	root := router.Group("/api")

	root.GET("/health", h.Health.Health)

	profiles := root.Group("/profiles")
	{
		profiles.GET("/me", authed, h.Profiles.GetMe)
		profiles.PUT("/me", authed, h.Profiles.UpdateMe)
		profiles.GET("/:id", h.Profiles.GetPublic)
	}

	certificates := root.Group("/certificates")
	{
		certificates.GET("", authed, h.Certificates.ListMine)
		certificates.GET("/user/:userId", h.Certificates.ListByUser)
		certificates.POST("", authed, h.Certificates.Create)
		certificates.DELETE("/:id", authed, h.Certificates.Delete)
	}

	projects := root.Group("/projects")
	{
		projects.GET("", authed, h.Projects.ListMine)
		projects.GET("/user/:userId", h.Projects.ListByUser)
		projects.POST("", authed, h.Projects.Create)
		projects.PUT("/:id", authed, h.Projects.Update)
		projects.DELETE("/:id", authed, h.Projects.Delete)
	}

	posts := root.Group("/posts")
	{
		posts.GET("", h.Posts.List)
		posts.GET("/categories", h.Posts.Categories)
		posts.GET("/:id", h.Posts.Get)
		posts.POST("", authed, throttled, h.Posts.Create)
		posts.DELETE("/:id", authed, h.Posts.Delete)
	}

	comments := root.Group("/comments")
	{
		comments.POST("", authed, throttled, h.Comments.Create)
		comments.DELETE("/:id", authed, h.Comments.Delete)
	}

	adminRoutes := root.Group("/admin", authed, admin)
	{
		adminRoutes.GET("/users", h.Admin.ListUsers)
		adminRoutes.PUT("/users/:id/role", h.Admin.UpdateRole)
		adminRoutes.DELETE("/posts/:id", h.Admin.DeletePost)
	}

	return router
}

package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/senaitabera/wellspring/internal/handler/http/middleware"
	"github.com/senaitabera/wellspring/internal/infrastructure/jwt"
	"github.com/senaitabera/wellspring/internal/usecase"
)

type Router struct {
	blogHandler         *BlogHandler
	communityHandler    *CommunityHandler
	consultationHandler *ConsultationHandler
	resourceHandler     *ResourceHandler
	commentHandler      *CommentHandler
	jwtManager          *jwt.Manager
}

func NewRouter(blogUsecase usecase.IBlogUseCase, communityUsecase usecase.ICommunityUseCase, consultationUsecase usecase.IConsultationUseCase, resourceUsecase usecase.IResourceUseCase, commentUsecase usecase.ICommentUseCase, jwtManager *jwt.Manager) *Router {
	return &Router{
		blogHandler:         NewBlogHandler(blogUsecase),
		communityHandler:    NewCommunityHandler(communityUsecase),
		consultationHandler: NewConsultationHandler(consultationUsecase),
		resourceHandler:     NewResourceHandler(resourceUsecase),
		commentHandler:      NewCommentHandler(commentUsecase),
		jwtManager:          jwtManager,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public blog routes
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", r.blogHandler.GetPublicBlogPostsHandler)
		blogs.GET("/:postID", r.blogHandler.GetBlogPostHandler)
		blogs.GET("/:postID/comments", r.commentHandler.ListPublicCommentsHandler)
		blogs.POST("/:postID/comments", r.commentHandler.AddCommentHandler)
	}

	// Community board routes (open to visitors)
	community := v1.Group("/community")
	{
		community.GET("", r.communityHandler.ListPostsHandler)
		community.POST("", r.communityHandler.CreatePostHandler)
		community.GET("/:postID", r.communityHandler.GetPostHandler)
		community.PUT("/:postID", r.communityHandler.UpdatePostHandler)
		community.DELETE("/:postID", r.communityHandler.DeletePostHandler)
	}

	// Public consultation form
	v1.POST("/consultations", r.consultationHandler.SubmitHandler)

	// Public resource library
	resources := v1.Group("/resources")
	{
		resources.GET("", r.resourceHandler.ListHandler)
		resources.GET("/:resourceID", r.resourceHandler.GetHandler)
	}

	// Admin dashboard routes (admin token required)
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(r.jwtManager))
	{
		admin.GET("/blogs", r.blogHandler.GetAllBlogPostsHandler)
		admin.POST("/blogs", r.blogHandler.CreateBlogPostHandler)
		admin.PUT("/blogs/:postID", r.blogHandler.UpdateBlogPostHandler)
		admin.DELETE("/blogs/:postID", r.blogHandler.DeleteBlogPostHandler)
		admin.PUT("/blogs/:postID/trending", r.blogHandler.SetTrendingHandler)

		admin.GET("/consultations", r.consultationHandler.ListHandler)
		admin.PUT("/consultations/:consultationID/status", r.consultationHandler.UpdateStatusHandler)

		admin.POST("/resources", r.resourceHandler.CreateHandler)
		admin.PUT("/resources/:resourceID", r.resourceHandler.UpdateHandler)
		admin.DELETE("/resources/:resourceID", r.resourceHandler.DeleteHandler)

		admin.GET("/comments", r.commentHandler.ListModerationHandler)
		admin.PUT("/comments/:commentID/status", r.commentHandler.ModerateCommentHandler)
		admin.DELETE("/comments/:commentID", r.commentHandler.DeleteCommentHandler)
	}
}

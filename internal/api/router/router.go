package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rifkydyatama/si-eligible/config"
	"github.com/rifkydyatama/si-eligible/internal/api/handler"
	"github.com/rifkydyatama/si-eligible/internal/api/middleware"
	"github.com/rifkydyatama/si-eligible/pkg/jwt"
	"github.com/rifkydyatama/si-eligible/pkg/redis"
)

// Setup initializes and returns the Gin engine.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Import.MaxFileSize))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── uploaded evidence ──
	r.Static("/uploads", cfg.Storage.UploadDir)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentication (no token required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// routes requiring a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// student self-service
			scores := authorized.Group("/scores")
			scores.Use(middleware.RoleAuth("student"))
			{
				scores.GET("", h.Score.ListMine)
				scores.POST("/:id/verify", h.Score.VerifyOwn)
			}

			disputes := authorized.Group("/disputes")
			disputes.Use(middleware.RoleAuth("student"))
			{
				disputes.GET("", h.Dispute.ListMine)
				disputes.POST("", h.Dispute.Submit)
			}

			preferences := authorized.Group("/preferences")
			preferences.Use(middleware.RoleAuth("student"))
			{
				preferences.GET("", h.Preference.List)
				preferences.PUT("", h.Preference.Upsert)
				preferences.DELETE("/:rank", h.Preference.Delete)
			}

			graduation := authorized.Group("/graduation")
			graduation.Use(middleware.RoleAuth("student"))
			{
				graduation.GET("", h.Graduation.Get)
				graduation.PUT("", h.Graduation.Upsert)
				graduation.DELETE("", h.Graduation.Delete)
			}

			// campus catalog (all roles read; writes are admin only)
			campuses := authorized.Group("/campuses")
			{
				campuses.GET("", h.Campus.List)
				campuses.GET("/:id", h.Campus.Get)
				campuses.GET("/:id/majors", h.Campus.ListMajors)
			}

			// staff and admin
			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth("staff", "admin"))
			{
				admin.GET("/stats", h.Stats.Summary)

				admin.GET("/students", h.Student.List)
				admin.POST("/students", h.Student.Create)
				admin.GET("/students/:id", h.Student.Get)
				admin.PATCH("/students/:id", h.Student.Update)
				admin.DELETE("/students/:id", h.Student.Delete)
				admin.GET("/students/:id/scores", h.Score.ListByStudent)

				admin.POST("/scores/:id/verify", h.Score.VerifyAny)

				admin.GET("/disputes", h.Dispute.ListByStatus)
				admin.POST("/disputes/:id/resolve", h.Dispute.Resolve)

				admin.POST("/imports/scores", h.Import.ImportScores)
				admin.POST("/imports/students", h.Import.ImportStudents)

				admin.GET("/exports/eligible", h.Export.ExportEligible)

				// catalog management (admin only)
				admin.POST("/campuses", middleware.RoleAuth("admin"), h.Campus.Create)
				admin.PATCH("/campuses/:id", middleware.RoleAuth("admin"), h.Campus.Update)
				admin.DELETE("/campuses/:id", middleware.RoleAuth("admin"), h.Campus.Delete)
				admin.POST("/campuses/:id/majors", middleware.RoleAuth("admin"), h.Campus.CreateMajor)
				admin.PATCH("/majors/:id", middleware.RoleAuth("admin"), h.Campus.UpdateMajor)
				admin.DELETE("/majors/:id", middleware.RoleAuth("admin"), h.Campus.DeleteMajor)
			}
		}
	}

	return r
}

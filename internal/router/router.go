package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rkashyapa/automanage-industrial-hub/internal/config"
	"github.com/rkashyapa/automanage-industrial-hub/internal/handler"
	"github.com/rkashyapa/automanage-industrial-hub/internal/infra"
	"github.com/rkashyapa/automanage-industrial-hub/internal/middleware"
	"github.com/rkashyapa/automanage-industrial-hub/internal/repository"
	"github.com/rkashyapa/automanage-industrial-hub/internal/service"
	"github.com/rkashyapa/automanage-industrial-hub/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, snapshotCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	projectRepo := repository.NewProjectRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(rdb, time.Duration(cfg.SnapshotTTLHours)*time.Hour)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	sessionSvc := service.NewSessionService(cfg)
	bomSvc := service.NewBOMService(snapshotRepo, dispatcher)
	timesheetSvc := service.NewTimesheetService(snapshotRepo, dispatcher, bomSvc)
	projectSvc := service.NewProjectService(projectRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	sessionH := handler.NewSessionHandler(sessionSvc)
	bomH := handler.NewBOMHandler(bomSvc)
	timesheetH := handler.NewTimesheetHandler(timesheetSvc)
	projectsH := handler.NewProjectsHandler(projectSvc)
	exportH := handler.NewExportHandler(bomSvc, timesheetSvc, cfg.ExportStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, snapshotCB))
	r.POST("/v1/session", middleware.SessionRateLimiter(), sessionH.Open)

	// Protected routes — every workspace call carries a session token
	sessionMW := middleware.SessionAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", sessionMW)
	{
		bomGroup := v1.Group("/bom")
		{
			bomGroup.GET("", bomH.View)
			bomGroup.GET("/summary", bomH.Summary)
			bomGroup.POST("/save", bomH.Save)
			bomGroup.GET("/export.csv", exportH.BOMCSV)
			bomGroup.GET("/export.pdf", exportH.BOMPDF)

			bomGroup.POST("/categories", bomH.CreateCategory)
			bomGroup.PUT("/categories/:name", bomH.RenameCategory)
			bomGroup.DELETE("/categories/:name", bomH.DeleteCategory)
			bomGroup.POST("/categories/:name/parts", bomH.CreatePart)

			parts := bomGroup.Group("/parts/:key")
			{
				parts.GET("", bomH.GetPart)
				parts.PATCH("", bomH.UpdatePart)
				parts.DELETE("", bomH.DeletePart)
				parts.PUT("/quantity", bomH.SetQuantity)

				parts.POST("/vendors", bomH.AddVendor)
				parts.PATCH("/vendors/:idx", bomH.UpdateVendor)
				parts.DELETE("/vendors/:idx", bomH.DeleteVendor)
				parts.POST("/vendors/:idx/finalize", bomH.FinalizeVendor)

				parts.POST("/documents", bomH.AddPartDocument)
				parts.DELETE("/documents/:doc", bomH.RemovePartDocument)
				parts.POST("/vendors/:idx/documents", bomH.AddVendorDocument)
				parts.DELETE("/vendors/:idx/documents/:doc", bomH.RemoveVendorDocument)
			}
		}

		ts := v1.Group("/timesheet")
		{
			ts.GET("", timesheetH.View)
			ts.GET("/totals", timesheetH.Totals)
			ts.POST("/weeks", timesheetH.AddWeek)
			ts.POST("/engineers", timesheetH.AddEngineer)
			ts.PUT("/engineers/:idx", timesheetH.RenameEngineer)
			ts.PUT("/engineers/:idx/hours", timesheetH.SetHours)
			ts.PUT("/week", timesheetH.SelectWeek)
			ts.POST("/cost", timesheetH.CostAnalysis)
			ts.POST("/save", timesheetH.Save)
			ts.GET("/export.csv", exportH.TimesheetCSV)
		}

		projects := v1.Group("/projects")
		{
			projects.POST("", projectsH.Create)
			projects.GET("", projectsH.List)
			projects.GET("/:id", projectsH.Get)
			projects.PATCH("/:id", projectsH.Update)
			projects.DELETE("/:id", projectsH.Delete)
		}

		v1.GET("/dashboard/metrics", projectsH.DashboardMetrics)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

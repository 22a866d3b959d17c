package router

import (
	"time"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/config"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/handler"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/infra"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/middleware"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/repository"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/service"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/session"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) *gin.Engine {
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

	// ── Infrastructure ───────────────────────────────────────────────────────
	sessionStore := session.NewRedisStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	collaboratorRepo := repository.NewCollaboratorRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	timeEntryRepo := repository.NewTimeEntryRepository(db)
	leaveRepo := repository.NewLeaveRequestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(collaboratorRepo, adminRepo, sessionStore)
	collaboratorSvc := service.NewCollaboratorService(collaboratorRepo, timeEntryRepo, leaveRepo, notificationRepo, adminRepo)
	adminSvc := service.NewAdminService(collaboratorRepo, adminRepo, leaveRepo, notificationRepo, dashboardRepo)
	timeEntrySvc := service.NewTimeEntryService(timeEntryRepo, collaboratorRepo, cfg.PDFStoragePath)
	leaveSvc := service.NewLeaveService(leaveRepo, collaboratorRepo, notificationRepo, dispatcher)
	announcementSvc := service.NewAnnouncementService(announcementRepo, collaboratorRepo, notificationRepo, dispatcher)
	bannerSvc := service.NewBannerService(bannerRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	collaboratorH := handler.NewCollaboratorHandler(collaboratorSvc)
	adminH := handler.NewAdminHandler(adminSvc)
	timeEntriesH := handler.NewTimeEntriesHandler(timeEntrySvc)
	leaveH := handler.NewLeaveHandler(leaveSvc)
	announcementsH := handler.NewAnnouncementsHandler(announcementSvc)
	bannersH := handler.NewBannersHandler(bannerSvc)

	// Session resolution runs on every route; the Require* guards decide
	// per-group whether an unauthenticated request may pass.
	r.Use(middleware.SessionAuth(sessionStore, cfg.SessionCookieName))

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))
	r.GET("/v1/info-banners", bannersH.PublicList)

	// Auth
	auth := r.Group("/v1/auth")
	{
		auth.POST("/collaborator-login", middleware.LoginRateLimiter(), authH.CollaboratorLogin)
		auth.POST("/admin-login", middleware.LoginRateLimiter(), authH.AdminLogin)
		auth.POST("/setup-access-code", middleware.RequirePendingSetup(), authH.SetupAccessCode)
		auth.GET("/session", authH.GetSession)
		auth.POST("/logout", authH.Logout)
	}

	// Collaborator-facing — full session required, pending sessions rejected
	me := r.Group("/v1/me", middleware.RequireCollaborator())
	{
		me.GET("", collaboratorH.Profile)
		me.GET("/history", collaboratorH.History)
		me.POST("/leave-requests", collaboratorH.SubmitLeave)
		me.GET("/leave-requests", collaboratorH.MyLeaveRequests)
		me.GET("/notifications", collaboratorH.Notifications)
		me.POST("/notifications/mark-read", collaboratorH.MarkNotificationsRead)
	}

	// Admin — role gate on the group, capability gates per endpoint
	admin := r.Group("/v1/admin", middleware.RequireAdmin(adminRepo))
	{
		admin.GET("/dashboard", adminH.Dashboard)

		admin.GET("/notifications", adminH.Notifications)
		admin.POST("/notifications/mark-read", adminH.MarkNotificationsRead)

		admin.POST("/collaborators", middleware.RequireCapability(adminRepo, middleware.CapCreateCollaborator), adminH.CreateCollaborator)
		admin.GET("/collaborators", adminH.ListCollaborators)
		admin.PUT("/collaborators/:id", adminH.UpdateCollaborator)
		admin.DELETE("/collaborators/:id", adminH.DeactivateCollaborator)
		admin.PATCH("/collaborators/:id/reactivate", adminH.ReactivateCollaborator)
		admin.POST("/collaborators/:id/reset-access-code", middleware.RequireCapability(adminRepo, middleware.CapChangeAccessCode), adminH.ResetAccessCode)

		admin.POST("/administrators", middleware.RequireCapability(adminRepo, middleware.CapCreateAdmin), adminH.CreateAdmin)
		admin.GET("/administrators", adminH.ListAdmins)
		admin.PUT("/administrators/:id", middleware.RequireCapability(adminRepo, middleware.CapCreateAdmin), adminH.UpdateAdmin)
		admin.DELETE("/administrators/:id", middleware.RequireCapability(adminRepo, middleware.CapCreateAdmin), adminH.DeactivateAdmin)

		admin.POST("/time-entries", middleware.RequireCapability(adminRepo, middleware.CapEnterHours), timeEntriesH.Create)
		admin.GET("/collaborators/:id/time-entries", timeEntriesH.ListByCollaborator)
		admin.GET("/collaborators/:id/statement", timeEntriesH.Statement)

		admin.GET("/leave-requests", leaveH.List)
		admin.POST("/leave-requests/:id/review", leaveH.Review)

		admin.POST("/announcements", announcementsH.Publish)
		admin.GET("/announcements", announcementsH.List)

		admin.POST("/info-banners", bannersH.Create)
		admin.GET("/info-banners", bannersH.List)
		admin.PUT("/info-banners/:id", bannersH.Update)
		admin.DELETE("/info-banners/:id", bannersH.Delete)
	}

	return r
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rensdev/urenregistratie-api/internal/audit"
	"github.com/rensdev/urenregistratie-api/internal/config"
	domain "github.com/rensdev/urenregistratie-api/internal/domain/timesheet"
	"github.com/rensdev/urenregistratie-api/internal/handlers"
	infraRepo "github.com/rensdev/urenregistratie-api/internal/infra/repository"
	"github.com/rensdev/urenregistratie-api/internal/logging"
	"github.com/rensdev/urenregistratie-api/internal/mail"
	"github.com/rensdev/urenregistratie-api/internal/middleware"
	ucTimesheet "github.com/rensdev/urenregistratie-api/internal/usecase/timesheet"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// --------- Infra ---------

	timesheetRepo := newTimesheetRepository(db, cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := mail.NewSMTPMailer(cfg)

	// --------- Use cases ---------

	submitUC := ucTimesheet.NewSubmitRegistration(timesheetRepo, auditDispatcher)
	listUC := ucTimesheet.NewListRegistrations(timesheetRepo)

	// --------- Handlers ---------

	authHandler := handlers.NewAuthHandler(db, cfg)
	timesheetHandler := handlers.NewTimesheetHandler(submitUC, listUC)
	contactHandler := handlers.NewContactHandler(mailer)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)

	// --------- Public routes ---------

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	r.POST("/urenregistratie", timesheetHandler.Create)
	r.GET("/urenregistraties", timesheetHandler.List)

	r.POST("/contact", contactHandler.Send)

	// --------- Protected routes ---------

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)
		secured.GET("/users", userHandler.List)
	}
}

func newTimesheetRepository(db *gorm.DB, cfg *config.Config) domain.Repository {
	if cfg.StorageDriver == "file" {
		logging.Log.Infof("using file-backed timesheet store at %s", cfg.HoursFile)
		return infraRepo.NewTimesheetFileRepository(cfg.HoursFile)
	}
	return infraRepo.NewTimesheetGormRepository(db)
}

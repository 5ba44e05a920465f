package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/timeclock-app/timeclock-backend-go/internal/config"
	appHTTP "github.com/timeclock-app/timeclock-backend-go/internal/handler/http"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/email"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/oauth"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/storage"
	"github.com/timeclock-app/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/timeclock-app/timeclock-backend-go/internal/service/attendance"
	serviceAuth "github.com/timeclock-app/timeclock-backend-go/internal/service/auth"
	"github.com/timeclock-app/timeclock-backend-go/internal/service/file"
	profileService "github.com/timeclock-app/timeclock-backend-go/internal/service/profile"
	reportService "github.com/timeclock-app/timeclock-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	resetRepo := postgresql.NewPasswordResetRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.GoogleEnabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, profileRepo, jwtService, jwtRepo, resetRepo, emailService, cfg.App.FrontendURL)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, profileRepo)
	reportSvc := reportService.NewReportService(reportRepo, attendanceRepo)
	profileSvc := profileService.NewProfileService(profileRepo, userRepo, fileService)

	authHandler := appHTTP.NewAuthHandler(jwtService, authService, googleService, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	profileHandler := appHTTP.NewProfileHandler(profileSvc)

	router := appHTTP.NewRouter(cfg, db, jwtService, authHandler, attendanceHandler, reportHandler, profileHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped:", err)
	}
}

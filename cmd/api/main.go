package main

import (
	"fmt"
	"net/http"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/config"
	appHTTP "github.com/hamkaran-hr/hozoor-backend-go/internal/handler/http"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/database"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/jwt"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/tehran"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/repository/postgresql"
	authService "github.com/hamkaran-hr/hozoor-backend-go/internal/service/auth"
	timesheetService "github.com/hamkaran-hr/hozoor-backend-go/internal/service/timesheet"
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

	personnelRepo := postgresql.NewPersonnelRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(personnelRepo, jwtService)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, tehran.Tehran)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	calendarHandler := appHTTP.NewCalendarHandler(tehran.Tehran)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc, cfg.Report)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		calendarHandler,
		timesheetHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

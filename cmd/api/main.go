package main

import (
	"fmt"
	"net/http"

	"github.com/lavorotracker/paycalc-backend-go/internal/config"
	appHTTP "github.com/lavorotracker/paycalc-backend-go/internal/handler/http"
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/database"
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/jwt"
	"github.com/lavorotracker/paycalc-backend-go/internal/repository/postgresql"
	authService "github.com/lavorotracker/paycalc-backend-go/internal/service/auth"
	earningsService "github.com/lavorotracker/paycalc-backend-go/internal/service/earnings"
	oncallService "github.com/lavorotracker/paycalc-backend-go/internal/service/oncall"
	settingsService "github.com/lavorotracker/paycalc-backend-go/internal/service/settings"
	timesheetService "github.com/lavorotracker/paycalc-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	settingsRepo := postgresql.NewCalcSettingsRepository(db)
	recordRepo := postgresql.NewWorkRecordRepository(db)
	oncallRepo := postgresql.NewOnCallDayRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, recordRepo)
	oncallSvc := oncallService.NewCalendarService(oncallRepo)
	earningsSvc := earningsService.NewEarningsService(recordRepo, settingsRepo, oncallRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	onCallHandler := appHTTP.NewOnCallHandler(oncallSvc)
	earningsHandler := appHTTP.NewEarningsHandler(earningsSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		timesheetHandler,
		settingsHandler,
		onCallHandler,
		earningsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

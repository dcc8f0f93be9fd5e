package main

import (
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ada/config"
	"ada/database"
	"ada/router"

	// Model + adapters
	"ada/pkg/ai"
	"ada/pkg/brief"
	"ada/pkg/calendar"
	"ada/pkg/permissions"
	"ada/pkg/reminder"

	// Core lifecycle
	"ada/pkg/executor"
	planCtrlImp "ada/pkg/plan/controllerImp"
	planRepoImp "ada/pkg/plan/repositoryImp"
	planSvc "ada/pkg/plan/serviceImp"

	// Items
	itemCtrlImp "ada/pkg/item/controllerImp"
	itemRepoImp "ada/pkg/item/repositoryImp"

	// Ledger
	ledgerCtrlImp "ada/pkg/ledger/controllerImp"
	ledgerRepoImp "ada/pkg/ledger/repositoryImp"
	ledgerSvcImp "ada/pkg/ledger/serviceImp"

	// Conversations + chat
	"ada/pkg/chat"
	convRepoImp "ada/pkg/conversation/repositoryImp"

	// Scan
	"ada/pkg/scan"

	// Auth + health
	authCtrlImp "ada/pkg/auth/controllerImp"
	healthCtrlImp "ada/pkg/health/controllerImp"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger

	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Model client (mock fallback when no endpoint configured)
	var model ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		model = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		logger.Warn().Msg("no LLM endpoint configured, using mock model")
		model = ai.NewMock()
	}

	// 4) Capability gate + external adapters
	perms := permissions.New(cfg.CalendarAccess, cfg.ReminderAccess, cfg.CameraAccess)
	cal := calendar.New(db, perms)
	rem := reminder.New(db, perms)

	// 5) Repos
	plansRepo := planRepoImp.New(db)
	itemsRepo := itemRepoImp.New(db)
	convsRepo := convRepoImp.New(db)
	ledgerRepo := ledgerRepoImp.New(db)

	// 6) Services
	ledgerSvc := ledgerSvcImp.New(ledgerRepo, logger)
	exec := executor.New(cal, rem, plansRepo, itemsRepo, ledgerSvc, logger)
	pSvc := planSvc.NewPlanService(model, exec, plansRepo, itemsRepo, convsRepo, ledgerSvc, logger)
	scanSvc := scan.NewService(model, itemsRepo, logger)
	briefSvc := brief.NewService(model, cal, rem, itemsRepo)

	// 7) Controllers
	plCtrl := planCtrlImp.NewPlanCtrl(pSvc)
	itCtrl := itemCtrlImp.New(itemsRepo)
	ldCtrl := ledgerCtrlImp.New(ledgerSvc)
	scCtrl := scan.NewCtrl(scanSvc)
	brCtrl := brief.NewCtrl(briefSvc)
	chCtrl := chat.NewCtrl(model, convsRepo)
	pmCtrl := permissions.NewCtrl(perms)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Echo + routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	r := router.New(e, plCtrl, itCtrl, ldCtrl, scCtrl, brCtrl, chCtrl, pmCtrl, authCtrl, hCtrl)

	// 9) Start
	logger.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

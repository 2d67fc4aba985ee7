package main

import (
	"time"

	"github.com/ninetyarc/ninetyarc/config"
	"github.com/ninetyarc/ninetyarc/models"
	"github.com/ninetyarc/ninetyarc/routes"
	"github.com/ninetyarc/ninetyarc/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.DailyEntry{})

	r := routes.SetupRouter(db)

	// Evening reminders for incomplete days (best-effort)
	utils.StartReminderScheduler(db, time.Duration(cfg.ReminderIntervalMin)*time.Minute)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}

package main

import (
	"context"
	stdlog "log"

	"github.com/robfig/cron/v3"

	"github.com/MimeLyc/agui-go/internal/checker"
	"github.com/MimeLyc/agui-go/internal/config"
	"github.com/MimeLyc/agui-go/internal/persistence"
	"github.com/MimeLyc/agui-go/internal/service"
	"github.com/MimeLyc/agui-go/pkg/log"
)

func main() {
	// Initialize configuration
	cfg, err := config.New()
	if err != nil {
		stdlog.Fatal("Failed to load configuration:", err)
	}

	level := log.ParseLevel(cfg.Log.Level)
	if cfg.Log.File != "" {
		fileLogger, err := log.NewFileLogger(cfg.Log.File, level)
		if err != nil {
			stdlog.Fatal("Failed to open log file:", err)
		}
		defer fileLogger.Close()
		log.SetGlobalLogger(fileLogger.Logger)
	} else {
		log.InitLogger(level)
	}

	store, err := persistence.NewSQLiteStore(cfg.Checker.DBPath)
	if err != nil {
		stdlog.Fatal("Failed to open validation store:", err)
	}
	defer store.Close()

	chk := checker.New(store, cfg.Checker.Concurrency)
	ctx := context.Background()

	// Without a schedule, scan the payload directory once and exit.
	if cfg.Checker.CronExpr == "" {
		if _, err := chk.CheckDir(ctx, cfg.Checker.PayloadDir); err != nil {
			stdlog.Fatal("Scan failed:", err)
		}
		return
	}

	cron := cron.New()
	cronSvc := service.NewRunnableCheckService(*cfg, chk, cron)

	err = cronSvc.Schedule(ctx)
	if err != nil {
		panic(err)
	}
	cron.Run()
}

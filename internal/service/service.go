package service

import (
	"context"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"github.com/MimeLyc/agui-go/internal/checker"
	"github.com/MimeLyc/agui-go/internal/config"
	"github.com/MimeLyc/agui-go/pkg/log"
)

type checkService struct {
	cfg      config.Config
	checker  *checker.Checker
	cronExpr string
	cron     *cron.Cron
}

// NewRunnableCheckService wraps a checker in a cron-driven service that
// periodically re-scans the configured payload directory.
func NewRunnableCheckService(
	cfg config.Config,
	chk *checker.Checker,
	cron *cron.Cron,
) checkService {
	return checkService{
		cfg:      cfg,
		checker:  chk,
		cronExpr: cfg.Checker.CronExpr,
		cron:     cron,
	}
}

var singleflightGroup singleflight.Group

// RunOnce performs one scan of the payload directory.
func (s checkService) RunOnce(ctx context.Context) error {
	_, err := s.checker.CheckDir(ctx, s.cfg.Checker.PayloadDir)
	return err
}

// Schedule registers the periodic scan and runs a first scan
// immediately. Overlapping ticks collapse into one running scan via
// singleflight.
func (s checkService) Schedule(ctx context.Context) error {
	log.Info("Run CheckService")

	runFunc := func() {
		_, _, _ = singleflightGroup.Do("run", func() (any, error) {
			if err := s.RunOnce(ctx); err != nil {
				log.Error("Failed to check payload dir %s: %v", s.cfg.Checker.PayloadDir, err)
			}
			return nil, nil
		})
	}
	runFunc()
	_, err := s.cron.AddFunc(s.cronExpr, runFunc)
	return err
}

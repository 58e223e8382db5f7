package scheduler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"controlserv/internal/config"
	"controlserv/internal/domain/entities"
	"controlserv/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the automatic JSON backup job. The browser app only offered
// manual backups; running as a service we can snapshot the collection on a
// cron schedule instead.

type Scheduler struct {
	cron   *cron.Cron
	store  usecase.IServiceUseCase
	cfg    config.BackupConfig
	logger *zap.Logger
}

func NewScheduler(cfg config.BackupConfig, store usecase.IServiceUseCase, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(),
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers the backup job and starts the cron loop.
func (s *Scheduler) Start() {
	if !s.cfg.Enabled {
		s.logger.Info("automatic backups disabled")
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))
	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.writeBackup); err != nil {
		s.logger.Error("failed to schedule backup job", zap.Error(err))
		return
	}
	s.cron.Start()
}

// Stop stops the cron loop; a backup in progress finishes.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) writeBackup() {
	blob, err := s.store.ExportJSON()
	if err != nil {
		s.logger.Error("backup export failed", zap.Error(err))
		return
	}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		s.logger.Error("backup dir creation failed", zap.Error(err))
		return
	}

	name := fmt.Sprintf("controlserv_backup_%s.json", time.Now().Format(entities.DateLayout))
	path := filepath.Join(s.cfg.Dir, name)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		s.logger.Error("backup write failed", zap.String("path", path), zap.Error(err))
		return
	}
	s.logger.Info("backup written", zap.String("path", path))
}

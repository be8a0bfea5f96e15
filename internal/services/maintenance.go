package services

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/repository/bolt"
)

// Maintenance runs the scheduled compaction of the content store. Commits
// rewrite the full aggregate, and inline uploads make each write large, so
// the Bolt file accumulates freed pages worth reclaiming off-peak.
type Maintenance struct {
	repo     *bolt.Repository
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewMaintenance(repo *bolt.Repository, schedule string, logger *zap.Logger) *Maintenance {
	if schedule == "" {
		schedule = "0 3 * * *"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Maintenance{
		repo:     repo,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start registers the compaction job and launches the scheduler.
func (m *Maintenance) Start() error {
	if _, err := m.cron.AddFunc(m.schedule, m.compact); err != nil {
		return err
	}
	m.cron.Start()
	m.logger.Info("maintenance scheduled", zap.String("schedule", m.schedule))
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish within the
// context deadline.
func (m *Maintenance) Stop(ctx context.Context) {
	done := m.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
		m.logger.Warn("maintenance stop timed out")
	}
}

func (m *Maintenance) compact() {
	before, err := m.repo.FileSize()
	if err != nil {
		m.logger.Warn("store stat failed before compaction", zap.Error(err))
	}
	if err := m.repo.Compact(); err != nil {
		m.logger.Error("store compaction failed", zap.Error(err))
		return
	}
	after, err := m.repo.FileSize()
	if err != nil {
		m.logger.Warn("store stat failed after compaction", zap.Error(err))
		return
	}
	m.logger.Info("store compacted",
		zap.Int64("bytes_before", before),
		zap.Int64("bytes_after", after))
}

package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/repository/bolt"
)

// AdvisorProbe reports whether the advisory backend is reachable in
// principle, without issuing a billable request.
type AdvisorProbe interface {
	Configured() bool
}

// Monitor samples the content store and the advisor configuration on a fixed
// interval and caches the last observation for the health endpoint.
type Monitor struct {
	store   *bolt.Repository
	advisor AdvisorProbe

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(store *bolt.Repository, advisor AdvisorProbe, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		advisor:  advisor,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

// IsOnline reports whether the content store answers reads. The advisor is
// optional and never gates readiness.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Store
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	storeOK, slotBytes, fileBytes := m.checkStore()
	status := Status{
		Store:     storeOK,
		SlotBytes: slotBytes,
		FileBytes: fileBytes,
		Advisor:   m.advisor != nil && m.advisor.Configured(),
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkStore() (bool, int, int64) {
	if m.store == nil {
		return false, 0, 0
	}
	if !m.store.Available() {
		return false, 0, 0
	}
	slot, err := m.store.SlotSize()
	if err != nil {
		m.logger.Warn("slot size check failed", zap.Error(err))
		return false, 0, 0
	}
	file, err := m.store.FileSize()
	if err != nil {
		m.logger.Warn("store file stat failed", zap.Error(err))
		file = 0
	}
	return true, slot, file
}

package content

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/repository"
)

// Store owns the canonical SiteContent aggregate. It reads the persisted
// copy once, keeps the aggregate in memory for the life of the process and
// rewrites the storage slot wholesale on every commit. The aggregate is
// treated as opaque and atomic: no partial writes, no migrations.
type Store struct {
	repo   repository.ContentRepository
	logger *zap.Logger

	mu      sync.RWMutex
	current *domain.SiteContent
}

// New builds a content store around the given repository.
func New(repo repository.ContentRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:   repo,
		logger: logger,
	}
}

// Load reads the persisted aggregate. An empty or unreadable slot degrades
// silently to the bundled default content; Load never fails.
func (s *Store) Load(ctx context.Context) *domain.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// Current returns a detached copy of the in-memory aggregate held since the
// last Load or Commit, loading it first if this is the first access.
func (s *Store) Current() *domain.SiteContent {
	s.mu.RLock()
	if s.current != nil {
		defer s.mu.RUnlock()
		return s.current.Clone()
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return s.loadLocked(context.Background())
	}
	return s.current.Clone()
}

// Commit persists the full aggregate, overwriting any previous value, and
// swaps the in-memory copy only after the write succeeded.
func (s *Store) Commit(ctx context.Context, content *domain.SiteContent) error {
	if content == nil {
		return domain.ErrInvalidPayload
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, content); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "content commit failed", err)
	}
	s.current = content.Clone()
	return nil
}

func (s *Store) loadLocked(ctx context.Context) *domain.SiteContent {
	stored, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		s.current = stored
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		s.logger.Info("no stored content, using defaults")
		s.current = domain.DefaultContent()
	default:
		s.logger.Warn("stored content unreadable, using defaults", zap.Error(err))
		s.current = domain.DefaultContent()
	}
	return s.current.Clone()
}

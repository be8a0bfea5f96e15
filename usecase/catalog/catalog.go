package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/usecase/content"
)

// UseCase applies the uniform collection-editor contract to districts, soil
// issues, documents, media and custom modules: add assigns a fresh
// identifier, update replaces exactly one field, remove filters by
// identifier. Updates and removals report Found/NotFound explicitly; a
// NotFound outcome commits nothing.
type UseCase struct {
	store  *content.Store
	logger *zap.Logger
}

func New(store *content.Store, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// commitUpdate persists the aggregate produced by an update operation unless
// the target entity was missing or the field change was rejected.
func (uc *UseCase) commitUpdate(ctx context.Context, next *domain.SiteContent, found bool, err error) (bool, error) {
	if err != nil {
		return found, err
	}
	if !found {
		return false, nil
	}
	return true, uc.store.Commit(ctx, next)
}

// commitRemoval persists the aggregate produced by a removal unless the
// entity was already absent.
func (uc *UseCase) commitRemoval(ctx context.Context, next *domain.SiteContent, found bool) (bool, error) {
	if !found {
		return false, nil
	}
	return true, uc.store.Commit(ctx, next)
}

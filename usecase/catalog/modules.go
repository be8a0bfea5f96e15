package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
)

// AddCustomModule registers a new operator-defined page block.
func (uc *UseCase) AddCustomModule(ctx context.Context, draft domain.CustomModule) (domain.CustomModule, error) {
	next, created := uc.store.Current().AddCustomModule(draft)
	if err := uc.store.Commit(ctx, next); err != nil {
		return domain.CustomModule{}, err
	}
	uc.logger.Info("custom module added", zap.String("module_id", created.ID))
	return created, nil
}

// UpdateCustomModule replaces one field of the identified module.
func (uc *UseCase) UpdateCustomModule(ctx context.Context, id string, field domain.CustomModuleField, lang domain.Language, value string) (bool, error) {
	next, found, err := uc.store.Current().UpdateCustomModuleField(id, field, lang, value)
	return uc.commitUpdate(ctx, next, found, err)
}

// RemoveCustomModule deletes the identified module; found=false when absent.
func (uc *UseCase) RemoveCustomModule(ctx context.Context, id string) (bool, error) {
	next, found := uc.store.Current().RemoveCustomModule(id)
	return uc.commitRemoval(ctx, next, found)
}

package branding

import (
	"context"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/usecase/content"
)

// UseCase edits the branding strings and localized headings of the site.
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

// UpdateField replaces a single branding string field.
func (uc *UseCase) UpdateField(ctx context.Context, field domain.BrandingField, value string) error {
	next, err := uc.store.Current().UpdateBranding(field, value)
	if err != nil {
		return err
	}
	if err := uc.store.Commit(ctx, next); err != nil {
		return err
	}
	uc.logger.Info("branding updated", zap.String("field", string(field)))
	return nil
}

// UpdateHeading replaces one language entry of a localized heading.
func (uc *UseCase) UpdateHeading(ctx context.Context, field domain.HeadingField, lang domain.Language, value string) error {
	next, err := uc.store.Current().UpdateHeading(field, lang, value)
	if err != nil {
		return err
	}
	if err := uc.store.Commit(ctx, next); err != nil {
		return err
	}
	uc.logger.Info("heading updated",
		zap.String("field", string(field)),
		zap.String("language", string(lang)))
	return nil
}

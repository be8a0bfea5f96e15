package repository

import (
	"context"

	"github.com/soilhealth-et/portal/domain"
)

// ContentRepository persists the SiteContent aggregate as one opaque value.
// Load returns domain.ErrContentNotFound when the slot is empty and
// domain.ErrContentCorrupt when the stored value does not parse.
type ContentRepository interface {
	Load(ctx context.Context) (*domain.SiteContent, error)
	Save(ctx context.Context, content *domain.SiteContent) error
}

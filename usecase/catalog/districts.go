package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
)

// AddDistrict registers a new project area, seeding placeholder localized
// names when the draft leaves them empty.
func (uc *UseCase) AddDistrict(ctx context.Context, draft domain.DistrictData) (domain.DistrictData, error) {
	next, created := uc.store.Current().AddDistrict(draft)
	if err := uc.store.Commit(ctx, next); err != nil {
		return domain.DistrictData{}, err
	}
	uc.logger.Info("district added",
		zap.String("district_id", created.ID),
		zap.String("name", created.Name))
	return created, nil
}

// UpdateDistrict replaces one field of the identified district.
func (uc *UseCase) UpdateDistrict(ctx context.Context, id string, field domain.DistrictField, lang domain.Language, value string) (bool, error) {
	next, found, err := uc.store.Current().UpdateDistrictField(id, field, lang, value)
	return uc.commitUpdate(ctx, next, found, err)
}

// RemoveDistrict deletes the identified district; found=false when absent.
func (uc *UseCase) RemoveDistrict(ctx context.Context, id string) (bool, error) {
	next, found := uc.store.Current().RemoveDistrict(id)
	return uc.commitRemoval(ctx, next, found)
}

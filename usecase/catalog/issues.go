package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
)

// AddSoilIssue registers a new knowledge-base entry.
func (uc *UseCase) AddSoilIssue(ctx context.Context, draft domain.SoilIssue) (domain.SoilIssue, error) {
	next, created := uc.store.Current().AddSoilIssue(draft)
	if err := uc.store.Commit(ctx, next); err != nil {
		return domain.SoilIssue{}, err
	}
	uc.logger.Info("soil issue added", zap.String("issue_id", created.ID))
	return created, nil
}

// UpdateSoilIssue replaces one field of the identified issue.
func (uc *UseCase) UpdateSoilIssue(ctx context.Context, id string, field domain.SoilIssueField, lang domain.Language, value string) (bool, error) {
	next, found, err := uc.store.Current().UpdateSoilIssueField(id, field, lang, value)
	return uc.commitUpdate(ctx, next, found, err)
}

// RemoveSoilIssue deletes the identified issue; found=false when absent.
func (uc *UseCase) RemoveSoilIssue(ctx context.Context, id string) (bool, error) {
	next, found := uc.store.Current().RemoveSoilIssue(id)
	return uc.commitRemoval(ctx, next, found)
}

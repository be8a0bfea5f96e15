package layout

import (
	"context"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/usecase/content"
)

// Options configures the sequencer behavior.
type Options struct {
	// RejectDanglingModule makes appending a custom section fail when its
	// module reference does not resolve. Off by default: the original editor
	// accepted the reference and left skipping to the renderer.
	RejectDanglingModule bool
}

// UseCase maintains the ordered section sequence that drives render order.
type UseCase struct {
	store  *content.Store
	opts   Options
	logger *zap.Logger
}

func New(store *content.Store, opts Options, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		store:  store,
		opts:   opts,
		logger: logger,
	}
}

// Append creates a section of the given type at the end of the sequence.
func (uc *UseCase) Append(ctx context.Context, t domain.SectionType, customID string) (domain.PageSection, error) {
	if !t.Valid() {
		return domain.PageSection{}, domain.ErrUnknownSection
	}

	current := uc.store.Current()
	if t == domain.SectionCustom && uc.opts.RejectDanglingModule && customID != "" {
		if _, ok := current.CustomModuleByID(customID); !ok {
			return domain.PageSection{}, domain.ErrModuleNotFound
		}
	}

	next, section := current.AppendSection(t, customID)
	if err := uc.store.Commit(ctx, next); err != nil {
		return domain.PageSection{}, err
	}
	uc.logger.Info("section appended",
		zap.String("section_id", section.ID),
		zap.String("type", string(section.Type)))
	return section, nil
}

// Move swaps the section at index with its neighbor. An out-of-bounds move
// is a no-op: nothing is committed and moved is false.
func (uc *UseCase) Move(ctx context.Context, index int, dir domain.MoveDirection) (moved bool, err error) {
	if dir != domain.MoveUp && dir != domain.MoveDown {
		return false, domain.ErrInvalidPayload
	}

	next, ok := uc.store.Current().MoveSection(index, dir)
	if !ok {
		return false, nil
	}
	if err := uc.store.Commit(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the section with the given identifier; found=false when no
// such section exists and nothing was committed.
func (uc *UseCase) Remove(ctx context.Context, id string) (found bool, err error) {
	next, ok := uc.store.Current().RemoveSection(id)
	if !ok {
		return false, nil
	}
	if err := uc.store.Commit(ctx, next); err != nil {
		return false, err
	}
	uc.logger.Info("section removed", zap.String("section_id", id))
	return true, nil
}

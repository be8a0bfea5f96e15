package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/domain"
)

// IngestDocument embeds an uploaded file as a data URI and registers it in
// the document library. The title defaults to the file name in both
// languages, matching the original upload flow.
func (uc *UseCase) IngestDocument(ctx context.Context, title domain.LocalizedText, docType domain.DocumentType, fileName, mimeType string, data []byte) (domain.Document, error) {
	if len(data) == 0 {
		return domain.Document{}, domain.ErrInvalidPayload
	}
	if title.IsZero() {
		title = domain.Localized(fileName, fileName)
	}
	uri := domain.DataURI(mimeType, data)
	draft := domain.Document{
		Title:      title,
		Type:       docType,
		URL:        uri,
		Base64Data: uri,
	}
	return uc.AddDocument(ctx, draft)
}

// IngestMedia embeds an uploaded asset as a data URI and registers it in the
// media gallery.
func (uc *UseCase) IngestMedia(ctx context.Context, title domain.LocalizedText, fileName, mimeType string, data []byte) (domain.Media, error) {
	if len(data) == 0 {
		return domain.Media{}, domain.ErrInvalidPayload
	}
	if title.IsZero() {
		title = domain.Localized(fileName, fileName)
	}
	uri := domain.DataURI(mimeType, data)
	draft := domain.Media{
		Title:      title,
		URL:        uri,
		Thumbnail:  uri,
		Base64Data: uri,
	}
	return uc.AddMedia(ctx, draft)
}

// AddDocument registers a document referencing an external URL.
func (uc *UseCase) AddDocument(ctx context.Context, draft domain.Document) (domain.Document, error) {
	next, created := uc.store.Current().AddDocument(draft)
	if err := uc.store.Commit(ctx, next); err != nil {
		return domain.Document{}, err
	}
	uc.logger.Info("document added",
		zap.String("document_id", created.ID),
		zap.String("type", string(created.Type)))
	return created, nil
}

// AddMedia registers a media asset referencing an external URL.
func (uc *UseCase) AddMedia(ctx context.Context, draft domain.Media) (domain.Media, error) {
	next, created := uc.store.Current().AddMedia(draft)
	if err := uc.store.Commit(ctx, next); err != nil {
		return domain.Media{}, err
	}
	uc.logger.Info("media added", zap.String("media_id", created.ID))
	return created, nil
}

// UpdateDocument replaces one field of the identified document.
func (uc *UseCase) UpdateDocument(ctx context.Context, id string, field domain.DocumentField, lang domain.Language, value string) (bool, error) {
	next, found, err := uc.store.Current().UpdateDocumentField(id, field, lang, value)
	return uc.commitUpdate(ctx, next, found, err)
}

// UpdateMedia replaces one field of the identified media asset.
func (uc *UseCase) UpdateMedia(ctx context.Context, id string, field domain.MediaField, lang domain.Language, value string) (bool, error) {
	next, found, err := uc.store.Current().UpdateMediaField(id, field, lang, value)
	return uc.commitUpdate(ctx, next, found, err)
}

// RemoveDocument deletes the identified document; found=false when absent.
func (uc *UseCase) RemoveDocument(ctx context.Context, id string) (bool, error) {
	next, found := uc.store.Current().RemoveDocument(id)
	return uc.commitRemoval(ctx, next, found)
}

// RemoveMedia deletes the identified media asset; found=false when absent.
func (uc *UseCase) RemoveMedia(ctx context.Context, id string) (bool, error) {
	next, found := uc.store.Current().RemoveMedia(id)
	return uc.commitRemoval(ctx, next, found)
}

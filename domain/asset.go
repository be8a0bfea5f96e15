package domain

import (
	"encoding/base64"
	"fmt"
)

// DocumentType tags a library document.
type DocumentType string

const (
	DocumentPDF   DocumentType = "pdf"
	DocumentDoc   DocumentType = "doc"
	DocumentVideo DocumentType = "video"
)

// Valid reports whether the type belongs to the closed document-type set.
func (t DocumentType) Valid() bool {
	return t == DocumentPDF || t == DocumentDoc || t == DocumentVideo
}

// Document is a downloadable library asset. Uploaded files are embedded
// inline as data URIs; there is no separate blob store.
type Document struct {
	ID         string        `json:"id"`
	Title      LocalizedText `json:"title"`
	Type       DocumentType  `json:"type"`
	URL        string        `json:"url"`
	Base64Data string        `json:"base64Data,omitempty"`
}

// Media is an embedded gallery asset (image or video).
type Media struct {
	ID         string        `json:"id"`
	Title      LocalizedText `json:"title"`
	URL        string        `json:"url"`
	Thumbnail  string        `json:"thumbnail"`
	Base64Data string        `json:"base64Data,omitempty"`
}

// DocumentField names a single editable field of a document.
type DocumentField string

const (
	DocumentFieldTitle DocumentField = "title"
	DocumentFieldType  DocumentField = "type"
	DocumentFieldURL   DocumentField = "url"
)

// MediaField names a single editable field of a media asset.
type MediaField string

const (
	MediaFieldTitle     MediaField = "title"
	MediaFieldURL       MediaField = "url"
	MediaFieldThumbnail MediaField = "thumbnail"
)

// DataURI encodes raw bytes as a self-contained data URI so an uploaded
// asset can live inline inside the aggregate.
func DataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// AddDocument appends the draft document with a fresh identifier. The type
// defaults to pdf when unset.
func (c *SiteContent) AddDocument(draft Document) (*SiteContent, Document) {
	next := c.Clone()
	draft.ID = NewID("doc")
	if draft.Type == "" {
		draft.Type = DocumentPDF
	}
	next.Documents = append(next.Documents, draft)
	return next, draft
}

// AddMedia appends the draft media asset with a fresh identifier. The
// thumbnail falls back to the primary URL when unset.
func (c *SiteContent) AddMedia(draft Media) (*SiteContent, Media) {
	next := c.Clone()
	draft.ID = NewID("med")
	if draft.Thumbnail == "" {
		draft.Thumbnail = draft.URL
	}
	next.Media = append(next.Media, draft)
	return next, draft
}

// UpdateDocumentField replaces one field, or one language entry of the
// title, on the document with the given identifier.
func (c *SiteContent) UpdateDocumentField(id string, field DocumentField, lang Language, value string) (*SiteContent, bool, error) {
	next := c.Clone()
	for i := range next.Documents {
		if next.Documents[i].ID != id {
			continue
		}
		doc := &next.Documents[i]
		switch field {
		case DocumentFieldTitle:
			return next, true, doc.Title.Set(lang, value)
		case DocumentFieldType:
			if !DocumentType(value).Valid() {
				return next, true, ErrInvalidPayload
			}
			doc.Type = DocumentType(value)
			return next, true, nil
		case DocumentFieldURL:
			doc.URL = value
			return next, true, nil
		default:
			return next, true, ErrUnknownField
		}
	}
	if field != DocumentFieldTitle && field != DocumentFieldType && field != DocumentFieldURL {
		return next, false, ErrUnknownField
	}
	return next, false, nil
}

// UpdateMediaField replaces one field, or one language entry of the title,
// on the media asset with the given identifier.
func (c *SiteContent) UpdateMediaField(id string, field MediaField, lang Language, value string) (*SiteContent, bool, error) {
	next := c.Clone()
	for i := range next.Media {
		if next.Media[i].ID != id {
			continue
		}
		m := &next.Media[i]
		switch field {
		case MediaFieldTitle:
			return next, true, m.Title.Set(lang, value)
		case MediaFieldURL:
			m.URL = value
			return next, true, nil
		case MediaFieldThumbnail:
			m.Thumbnail = value
			return next, true, nil
		default:
			return next, true, ErrUnknownField
		}
	}
	if field != MediaFieldTitle && field != MediaFieldURL && field != MediaFieldThumbnail {
		return next, false, ErrUnknownField
	}
	return next, false, nil
}

// RemoveDocument filters the document with the given identifier out of the
// collection; found=false when it never existed.
func (c *SiteContent) RemoveDocument(id string) (next *SiteContent, found bool) {
	next = c.Clone()
	kept := next.Documents[:0]
	for _, doc := range next.Documents {
		if doc.ID == id {
			found = true
			continue
		}
		kept = append(kept, doc)
	}
	next.Documents = kept
	return next, found
}

// RemoveMedia filters the media asset with the given identifier out of the
// collection; found=false when it never existed.
func (c *SiteContent) RemoveMedia(id string) (next *SiteContent, found bool) {
	next = c.Clone()
	kept := next.Media[:0]
	for _, m := range next.Media {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	next.Media = kept
	return next, found
}

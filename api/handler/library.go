package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/api/transport"
	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/pkg/httpcontext"
	"github.com/soilhealth-et/portal/usecase/catalog"
)

// LibraryHandler exposes the document library and media gallery editors,
// including the inline upload flow.
type LibraryHandler struct {
	baseHandler
	uc *catalog.UseCase
}

func NewLibraryHandler(uc *catalog.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

func (h *LibraryHandler) uploadPayload(ctx *fasthttp.RequestCtx) (transport.UploadRequest, []byte, bool) {
	var req transport.UploadRequest
	if !h.decode(ctx, &req) {
		return req, nil, false
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil || len(data) == 0 {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "upload payload is not valid base64", err))
		return req, nil, false
	}
	return req, data, true
}

func uploadTitle(title string) domain.LocalizedText {
	if title == "" {
		return domain.LocalizedText{}
	}
	return domain.Localized(title, title)
}

// @Summary Register an external document
// @Tags library
// @Router /api/v1/admin/documents [post]
func (h *LibraryHandler) CreateDocument(ctx *fasthttp.RequestCtx) {
	var draft domain.Document
	if !h.decode(ctx, &draft) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddDocument(stdCtx, draft)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Upload a document as an inline data URI
// @Tags library
// @Router /api/v1/admin/documents/upload [post]
func (h *LibraryHandler) UploadDocument(ctx *fasthttp.RequestCtx) {
	req, data, ok := h.uploadPayload(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.IngestDocument(stdCtx, uploadTitle(req.Title), domain.DocumentType(req.Type), req.Filename, req.MimeType, data)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Edit one document field
// @Tags library
// @Router /api/v1/admin/documents/{id} [put]
func (h *LibraryHandler) UpdateDocument(ctx *fasthttp.RequestCtx) {
	var req transport.EntityUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.UpdateDocument(stdCtx, pathParam(ctx, "id"), domain.DocumentField(req.Field), domain.Language(req.Language), req.Value)
	h.respondUpdate(ctx, found, err, domain.ErrDocumentNotFound)
}

// @Summary Remove a document
// @Tags library
// @Router /api/v1/admin/documents/{id} [delete]
func (h *LibraryHandler) DeleteDocument(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.RemoveDocument(stdCtx, pathParam(ctx, "id"))
	h.respondUpdate(ctx, found, err, domain.ErrDocumentNotFound)
}

// @Summary Register an external media asset
// @Tags library
// @Router /api/v1/admin/media [post]
func (h *LibraryHandler) CreateMedia(ctx *fasthttp.RequestCtx) {
	var draft domain.Media
	if !h.decode(ctx, &draft) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddMedia(stdCtx, draft)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Upload a media asset as an inline data URI
// @Tags library
// @Router /api/v1/admin/media/upload [post]
func (h *LibraryHandler) UploadMedia(ctx *fasthttp.RequestCtx) {
	req, data, ok := h.uploadPayload(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.IngestMedia(stdCtx, uploadTitle(req.Title), req.Filename, req.MimeType, data)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Edit one media field
// @Tags library
// @Router /api/v1/admin/media/{id} [put]
func (h *LibraryHandler) UpdateMedia(ctx *fasthttp.RequestCtx) {
	var req transport.EntityUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.UpdateMedia(stdCtx, pathParam(ctx, "id"), domain.MediaField(req.Field), domain.Language(req.Language), req.Value)
	h.respondUpdate(ctx, found, err, domain.ErrMediaNotFound)
}

// @Summary Remove a media asset
// @Tags library
// @Router /api/v1/admin/media/{id} [delete]
func (h *LibraryHandler) DeleteMedia(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.RemoveMedia(stdCtx, pathParam(ctx, "id"))
	h.respondUpdate(ctx, found, err, domain.ErrMediaNotFound)
}

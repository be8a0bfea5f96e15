package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/api/transport"
	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/pkg/httpcontext"
	"github.com/soilhealth-et/portal/usecase/catalog"
)

// CatalogHandler exposes the district, soil-issue and custom-module editors.
type CatalogHandler struct {
	baseHandler
	uc *catalog.UseCase
}

func NewCatalogHandler(uc *catalog.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// decodeDraft fills dst from the body when one is present. Creation with an
// empty body is allowed; defaults are seeded downstream.
func (h *CatalogHandler) decodeDraft(ctx *fasthttp.RequestCtx, dst interface{}) bool {
	body := ctx.PostBody()
	if len(body) == 0 {
		return true
	}
	if err := json.Unmarshal(body, dst); err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "malformed request body", err))
		return false
	}
	return true
}

// @Summary Add a district
// @Tags catalog
// @Router /api/v1/admin/districts [post]
func (h *CatalogHandler) CreateDistrict(ctx *fasthttp.RequestCtx) {
	var draft domain.DistrictData
	if !h.decodeDraft(ctx, &draft) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddDistrict(stdCtx, draft)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Edit one district field
// @Tags catalog
// @Router /api/v1/admin/districts/{id} [put]
func (h *CatalogHandler) UpdateDistrict(ctx *fasthttp.RequestCtx) {
	var req transport.EntityUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.UpdateDistrict(stdCtx, pathParam(ctx, "id"), domain.DistrictField(req.Field), domain.Language(req.Language), req.Value)
	h.respondUpdate(ctx, found, err, domain.ErrDistrictNotFound)
}

// @Summary Remove a district
// @Tags catalog
// @Router /api/v1/admin/districts/{id} [delete]
func (h *CatalogHandler) DeleteDistrict(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.RemoveDistrict(stdCtx, pathParam(ctx, "id"))
	h.respondUpdate(ctx, found, err, domain.ErrDistrictNotFound)
}

// @Summary Add a soil issue
// @Tags catalog
// @Router /api/v1/admin/issues [post]
func (h *CatalogHandler) CreateIssue(ctx *fasthttp.RequestCtx) {
	var draft domain.SoilIssue
	if !h.decodeDraft(ctx, &draft) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddSoilIssue(stdCtx, draft)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Edit one soil-issue field
// @Tags catalog
// @Router /api/v1/admin/issues/{id} [put]
func (h *CatalogHandler) UpdateIssue(ctx *fasthttp.RequestCtx) {
	var req transport.EntityUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.UpdateSoilIssue(stdCtx, pathParam(ctx, "id"), domain.SoilIssueField(req.Field), domain.Language(req.Language), req.Value)
	h.respondUpdate(ctx, found, err, domain.ErrIssueNotFound)
}

// @Summary Remove a soil issue
// @Tags catalog
// @Router /api/v1/admin/issues/{id} [delete]
func (h *CatalogHandler) DeleteIssue(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.RemoveSoilIssue(stdCtx, pathParam(ctx, "id"))
	h.respondUpdate(ctx, found, err, domain.ErrIssueNotFound)
}

// @Summary Add a custom module
// @Tags catalog
// @Router /api/v1/admin/modules [post]
func (h *CatalogHandler) CreateModule(ctx *fasthttp.RequestCtx) {
	var draft domain.CustomModule
	if !h.decodeDraft(ctx, &draft) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddCustomModule(stdCtx, draft)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Edit one custom-module field
// @Tags catalog
// @Router /api/v1/admin/modules/{id} [put]
func (h *CatalogHandler) UpdateModule(ctx *fasthttp.RequestCtx) {
	var req transport.EntityUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.UpdateCustomModule(stdCtx, pathParam(ctx, "id"), domain.CustomModuleField(req.Field), domain.Language(req.Language), req.Value)
	h.respondUpdate(ctx, found, err, domain.ErrModuleNotFound)
}

// @Summary Remove a custom module
// @Tags catalog
// @Router /api/v1/admin/modules/{id} [delete]
func (h *CatalogHandler) DeleteModule(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.RemoveCustomModule(stdCtx, pathParam(ctx, "id"))
	h.respondUpdate(ctx, found, err, domain.ErrModuleNotFound)
}

// respondUpdate translates the tagged Found/NotFound outcome of an editor
// operation into the wire response.
func (h baseHandler) respondUpdate(ctx *fasthttp.RequestCtx, found bool, err error, notFound error) {
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if !found {
		h.respondError(ctx, notFound)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]bool{"applied": true})
}

package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/api/transport"
	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/pkg/httpcontext"
	"github.com/soilhealth-et/portal/usecase/layout"
)

type LayoutHandler struct {
	baseHandler
	uc *layout.UseCase
}

func NewLayoutHandler(uc *layout.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *LayoutHandler {
	return &LayoutHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Append a page section
// @Tags layout
// @Router /api/v1/admin/sections [post]
func (h *LayoutHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.SectionCreateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	section, err := h.uc.Append(stdCtx, domain.SectionType(req.Type), req.CustomID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, section)
}

// @Summary Move a section one slot up or down
// @Tags layout
// @Router /api/v1/admin/sections/move [post]
func (h *LayoutHandler) Move(ctx *fasthttp.RequestCtx) {
	var req transport.SectionMoveRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	moved, err := h.uc.Move(stdCtx, req.Index, domain.MoveDirection(req.Direction))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]bool{"moved": moved})
}

// @Summary Remove a section from the layout
// @Tags layout
// @Router /api/v1/admin/sections/{id} [delete]
func (h *LayoutHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "id")

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	found, err := h.uc.Remove(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if !found {
		h.respondError(ctx, domain.ErrSectionNotFound)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"removed": id})
}

package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/api/transport"
	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/pkg/ethiocal"
	"github.com/soilhealth-et/portal/pkg/httpcontext"
	"github.com/soilhealth-et/portal/usecase/branding"
	"github.com/soilhealth-et/portal/usecase/content"
)

type ContentHandler struct {
	baseHandler
	store    *content.Store
	branding *branding.UseCase
}

func NewContentHandler(store *content.Store, brandingUC *branding.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
		branding:    brandingUC,
	}
}

// @Summary Public site content
// @Tags content
// @Router /api/v1/content [get]
func (h *ContentHandler) Public(ctx *fasthttp.RequestCtx) {
	snapshot := h.store.Current().PublicView()
	h.respondSuccess(ctx, http.StatusOK, snapshot)
}

// @Summary Admin dashboard counters
// @Tags content
// @Router /api/v1/admin/dashboard [get]
func (h *ContentHandler) Dashboard(ctx *fasthttp.RequestCtx) {
	snapshot := h.store.Current()
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"districts": len(snapshot.Districts),
		"resources": len(snapshot.Documents) + len(snapshot.Media),
		"sections":  len(snapshot.ActiveSections),
		"issues":    len(snapshot.SoilIssues),
		"modules":   len(snapshot.CustomModules),
		"farmers":   len(snapshot.Farmers),
	})
}

// @Summary Localized Ethiopian date line
// @Tags content
// @Router /api/v1/calendar [get]
func (h *ContentHandler) Calendar(ctx *fasthttp.RequestCtx) {
	lang := domain.Language(ctx.QueryArgs().Peek("lang"))
	if !lang.Valid() {
		lang = domain.LangAmharic
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{
		"date":     ethiocal.DateString(time.Now(), lang == domain.LangAfaanOromoo),
		"language": string(lang),
	})
}

// @Summary Edit branding strings and localized headings
// @Tags content
// @Router /api/v1/admin/branding [put]
func (h *ContentHandler) UpdateBranding(ctx *fasthttp.RequestCtx) {
	var req transport.BrandingUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	// A language selector marks a heading edit; plain fields carry none.
	var err error
	if req.Language != "" {
		err = h.branding.UpdateHeading(stdCtx, domain.HeadingField(req.Field), domain.Language(req.Language), req.Value)
	} else {
		err = h.branding.UpdateField(stdCtx, domain.BrandingField(req.Field), req.Value)
	}
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"field": req.Field})
}

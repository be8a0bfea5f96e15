package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/api/transport"
	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/pkg/httpcontext"
	"github.com/soilhealth-et/portal/usecase/advisor"
)

type AdvisorHandler struct {
	baseHandler
	uc *advisor.UseCase
}

func NewAdvisorHandler(uc *advisor.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Ask the soil advisor
// @Tags advisor
// @Router /api/v1/advisor/chat [post]
func (h *AdvisorHandler) Chat(ctx *fasthttp.RequestCtx) {
	var req transport.ChatRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.Message == "" {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	history := make([]domain.ChatMessage, 0, len(req.History))
	for _, msg := range req.History {
		history = append(history, domain.ChatMessage{
			Role: domain.ChatRole(msg.Role),
			Text: msg.Text,
		})
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	reply := h.uc.Advise(stdCtx, req.Message, history, domain.Language(req.Language), req.District)
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"reply": reply})
}

package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/soilhealth-et/portal/api/transport"
	"github.com/soilhealth-et/portal/domain"
	"github.com/soilhealth-et/portal/pkg/httpcontext"
	"github.com/soilhealth-et/portal/usecase/authgate"
)

type AuthHandler struct {
	baseHandler
	uc *authgate.UseCase
}

func NewAuthHandler(uc *authgate.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Admin login
// @Tags auth
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	token, err := h.uc.Login(stdCtx, req.Email, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"token": token})
}

// @Summary Rotate the admin password
// @Tags auth
// @Router /api/v1/admin/password [post]
func (h *AuthHandler) ChangePassword(ctx *fasthttp.RequestCtx) {
	var req transport.PasswordChangeRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.New == "" {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.ChangePassword(stdCtx, req.Current, req.New, req.Confirm); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]bool{"changed": true})
}

// @Summary Replace the admin email
// @Tags auth
// @Router /api/v1/admin/email [put]
func (h *AuthHandler) UpdateEmail(ctx *fasthttp.RequestCtx) {
	var req transport.EmailUpdateRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.UpdateEmail(stdCtx, req.Email); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"email": req.Email})
}

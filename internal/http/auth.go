package http

import (
	"errors"
	"net/http"

	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/spendlog/spendlog/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin authenticates with email and password.
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a signed access token. Every credential failure returns the same message.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	sdk.Envelope{data=sdk.LoginData}	"Token and user"
//	@Failure		401		{object}	sdk.Envelope	"Invalid credentials"
//	@Failure		422		{object}	sdk.Envelope	"Validation error"
//	@Router			/v1/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sdk.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			sdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("login failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgLoginSuccessful, sdk.LoginData{
		Token: token,
		User:  toUserData(user),
	})
}

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/spendlog/spendlog/pkg/slogx"
)

type UsersHandler struct {
	UsersService *service.UsersService
}

// pathID parses the {id} path segment. Zero means malformed.
func pathID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// writeUserValidationError answers a failed create/update payload. The
// names message is reserved for a letters-only violation on the name
// fields; anything else gets the generic validation error.
func writeUserValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "alpha" && (fe.Field() == "FirstName" || fe.Field() == "LastName") {
				(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgNamesContainsOnlyLetters}).WriteError(w)
				return
			}
		}
	}
	sdk.ErrValidation.WriteError(w)
}

// HandleCreate registers a new user.
//
//	@Summary		Create user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.CreateUserRequest	true	"New user"
//	@Success		201		{object}	sdk.Envelope{data=sdk.UserData}
//	@Failure		422		{object}	sdk.Envelope	"Validation error, weak password, bad role or duplicate email"
//	@Security		BearerAuth
//	@Router			/v1/users [post]
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sdk.CreateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeUserValidationError(w, err)
		return
	}

	user, err := h.UsersService.CreateUser(ctx, req.FirstName, req.LastName, req.Email, req.Password, req.RoleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgPasswordMustBeStrong}).WriteError(w)
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			(&sdk.APIError{StatusCode: http.StatusConflict, Message: sdk.MsgEmailAlreadyRegistered}).WriteError(w)
		case errors.Is(err, service.ErrInvalidRole):
			(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgInvalidRoleID}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("user creation failed", "error", err)
			(&sdk.APIError{StatusCode: http.StatusInternalServerError, Message: sdk.MsgUserCreationFailed}).WriteError(w)
		}
		return
	}

	sdk.WriteSuccess(w, http.StatusCreated, sdk.MsgUserCreated, toUserData(user))
}

// HandleList returns a paginated user listing.
//
//	@Summary		List users
//	@Tags			Users
//	@Produce		json
//	@Param			offset	query		int		false	"Page offset"
//	@Param			limit	query		int		false	"Page size"
//	@Param			sort_by	query		string	false	"Sort field"
//	@Param			order	query		string	false	"asc or desc"
//	@Success		200		{object}	sdk.Envelope{data=sdk.UserListData}
//	@Failure		422		{object}	sdk.Envelope	"Invalid sort field or order"
//	@Security		BearerAuth
//	@Router			/v1/users [get]
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	offset, _ := strconv.Atoi(q.Get("offset"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	users, total, err := h.UsersService.ListUsers(ctx, offset, limit, q.Get("sort_by"), q.Get("order"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSortField):
			(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgInvalidSortField}).WriteError(w)
		case errors.Is(err, service.ErrInvalidSortOrder):
			(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgInvalidSortOrder}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("user listing failed", "error", err)
			sdk.ErrServerError.WriteError(w)
		}
		return
	}

	data := sdk.UserListData{
		Users: make([]sdk.UserData, len(users)),
		Total: total,
	}
	for i, u := range users {
		data.Users[i] = toUserData(u)
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgUsersRetrieved, data)
}

// HandleGet fetches one user.
//
//	@Summary		Get user
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	sdk.Envelope{data=sdk.UserData}
//	@Failure		404	{object}	sdk.Envelope	"User does not exist"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [get]
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	user, err := h.UsersService.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgUserNotExist}).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("user lookup failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgUserDataFound, toUserData(user))
}

// HandleUpdate changes a user's name fields.
//
//	@Summary		Update user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User id"
//	@Param			request	body		sdk.UpdateUserRequest	true	"New names"
//	@Success		200		{object}	sdk.Envelope{data=sdk.UserData}
//	@Failure		404		{object}	sdk.Envelope	"User does not exist"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [put]
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	var req sdk.UpdateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeUserValidationError(w, err)
		return
	}

	user, err := h.UsersService.UpdateUser(ctx, id, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgUserNotExist}).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("user update failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgUserUpdated, toUserData(user))
}

// HandleChangePassword rotates a user's password.
//
//	@Summary		Change password
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User id"
//	@Param			request	body		sdk.ChangePasswordRequest	true	"Old and new password"
//	@Success		200		{object}	sdk.Envelope
//	@Failure		422		{object}	sdk.Envelope	"Wrong old password or weak new password"
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/password [put]
func (h *UsersHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	var req sdk.ChangePasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	err := h.UsersService.ChangePassword(ctx, id, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgUserNotExist}).WriteError(w)
		case errors.Is(err, service.ErrPasswordIncorrect):
			(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgPasswordIncorrect}).WriteError(w)
		case errors.Is(err, service.ErrWeakPassword):
			(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgPasswordMustBeStrong}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("password change failed", "error", err)
			sdk.ErrServerError.WriteError(w)
		}
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgPasswordUpdated, nil)
}

// HandleDelete removes a user.
//
//	@Summary		Delete user
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	sdk.Envelope
//	@Failure		404	{object}	sdk.Envelope	"User does not exist"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [delete]
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	if err := h.UsersService.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgUserNotExist}).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("user deletion failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgUserDeleted, nil)
}

package http

import (
	"errors"
	"net/http"

	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/spendlog/spendlog/pkg/slogx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleCreate adds a role.
//
//	@Summary		Create role
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.RoleRequest	true	"New role"
//	@Success		201		{object}	sdk.Envelope{data=sdk.RoleData}
//	@Failure		409		{object}	sdk.Envelope	"Name already exists"
//	@Security		BearerAuth
//	@Router			/v1/roles [post]
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sdk.RoleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	role, err := h.RolesService.CreateRole(ctx, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrRoleAlreadyExists) {
			(&sdk.APIError{StatusCode: http.StatusConflict, Message: sdk.MsgRoleNameAlreadyExists}).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("role creation failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	sdk.WriteSuccess(w, http.StatusCreated, sdk.MsgRoleCreated, toRoleData(role))
}

// HandleList returns every role.
//
//	@Summary		List roles
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	sdk.Envelope{data=[]sdk.RoleData}
//	@Security		BearerAuth
//	@Router			/v1/roles [get]
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roles, err := h.RolesService.ListRoles(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("role listing failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	data := make([]sdk.RoleData, len(roles))
	for i, role := range roles {
		data[i] = toRoleData(role)
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgRolesRetrieved, data)
}

// HandleGet fetches one role.
//
//	@Summary		Get role
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int	true	"Role id"
//	@Success		200	{object}	sdk.Envelope{data=sdk.RoleData}
//	@Failure		404	{object}	sdk.Envelope	"Role does not exist"
//	@Security		BearerAuth
//	@Router			/v1/roles/{id} [get]
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	role, err := h.RolesService.GetRole(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrRoleNotFound) {
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgRoleNotExist}).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("role lookup failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgRolesRetrieved, toRoleData(role))
}

// HandleUpdate renames a role.
//
//	@Summary		Update role
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Role id"
//	@Param			request	body		sdk.RoleRequest	true	"New name"
//	@Success		200		{object}	sdk.Envelope{data=sdk.RoleData}
//	@Failure		404		{object}	sdk.Envelope	"Role does not exist"
//	@Failure		409		{object}	sdk.Envelope	"Name already exists"
//	@Security		BearerAuth
//	@Router			/v1/roles/{id} [put]
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	var req sdk.RoleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	role, err := h.RolesService.UpdateRole(ctx, id, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleNotFound):
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgRoleNotExist}).WriteError(w)
		case errors.Is(err, service.ErrRoleAlreadyExists):
			(&sdk.APIError{StatusCode: http.StatusConflict, Message: sdk.MsgRoleNameAlreadyExists}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("role update failed", "error", err)
			sdk.ErrServerError.WriteError(w)
		}
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgRoleUpdated, toRoleData(role))
}

// HandleDelete removes a role.
//
//	@Summary		Delete role
//	@Description	Deleting a role still assigned to users is refused.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int	true	"Role id"
//	@Success		200	{object}	sdk.Envelope
//	@Failure		404	{object}	sdk.Envelope	"Role does not exist"
//	@Failure		409	{object}	sdk.Envelope	"Role is assigned to users"
//	@Security		BearerAuth
//	@Router			/v1/roles/{id} [delete]
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	if err := h.RolesService.DeleteRole(ctx, id); err != nil {
		switch {
		case errors.Is(err, service.ErrRoleNotFound):
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgRoleNotExist}).WriteError(w)
		case errors.Is(err, service.ErrRoleInUse):
			(&sdk.APIError{StatusCode: http.StatusConflict, Message: sdk.MsgRoleInUse}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("role deletion failed", "error", err)
			sdk.ErrServerError.WriteError(w)
		}
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgRoleDeleted, nil)
}

package http

import (
	"errors"
	"net/http"

	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/spendlog/spendlog/pkg/slogx"
)

type ModulesHandler struct {
	ModulesService *service.ModulesService
}

// HandleCreate registers a module.
//
//	@Summary		Create module
//	@Tags			Modules
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.ModuleRequest	true	"New module"
//	@Success		201		{object}	sdk.Envelope{data=sdk.ModuleData}
//	@Failure		409		{object}	sdk.Envelope	"Name or link name already exists"
//	@Security		BearerAuth
//	@Router			/v1/modules [post]
func (h *ModulesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sdk.ModuleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	module, err := h.ModulesService.CreateModule(ctx, req.Name, req.LinkName, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrModuleAlreadyExists) {
			(&sdk.APIError{StatusCode: http.StatusConflict, Message: sdk.MsgModuleNameAlreadyExists}).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("module creation failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	sdk.WriteSuccess(w, http.StatusCreated, sdk.MsgModuleCreated, toModuleData(module))
}

// HandleUpdate rewrites a module.
//
//	@Summary		Update module
//	@Tags			Modules
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Module id"
//	@Param			request	body		sdk.ModuleRequest	true	"New fields"
//	@Success		200		{object}	sdk.Envelope{data=sdk.ModuleData}
//	@Failure		404		{object}	sdk.Envelope	"Module does not exist"
//	@Security		BearerAuth
//	@Router			/v1/modules/{id} [put]
func (h *ModulesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	var req sdk.ModuleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	module, err := h.ModulesService.UpdateModule(ctx, id, req.Name, req.LinkName, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrModuleNotFound):
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgModuleNotExist}).WriteError(w)
		case errors.Is(err, service.ErrModuleAlreadyExists):
			(&sdk.APIError{StatusCode: http.StatusConflict, Message: sdk.MsgModuleNameAlreadyExists}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("module update failed", "error", err)
			sdk.ErrServerError.WriteError(w)
		}
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgModuleUpdated, toModuleData(module))
}

// HandleListForRole lists every module flagged with the role's access.
//
//	@Summary		List modules for a role
//	@Tags			Modules
//	@Produce		json
//	@Param			role_id	path		int	true	"Role id"
//	@Success		200		{object}	sdk.Envelope{data=[]sdk.ModuleData}
//	@Failure		404		{object}	sdk.Envelope	"Role does not exist"
//	@Security		BearerAuth
//	@Router			/v1/modules/role/{role_id} [get]
func (h *ModulesHandler) HandleListForRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roleID := pathID(r, "role_id")
	if roleID == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	modules, err := h.ModulesService.ListModulesForRole(ctx, roleID)
	if err != nil {
		if errors.Is(err, service.ErrRoleNotFound) {
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgRoleNotExist}).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("module listing failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	data := make([]sdk.ModuleData, len(modules))
	for i, m := range modules {
		data[i] = toModuleData(m.Module)
		data[i].HasPermission = m.HasPermission
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgModulesRetrieved, data)
}

// HandleTogglePermission flips a role's access to a module.
//
//	@Summary		Toggle module permission
//	@Description	An existing permission entry is deleted, a missing one is created. The message tells which happened.
//	@Tags			Modules
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.TogglePermissionRequest	true	"Role and module"
//	@Success		200		{object}	sdk.Envelope
//	@Failure		404		{object}	sdk.Envelope	"Role or module does not exist"
//	@Security		BearerAuth
//	@Router			/v1/modules/permission [put]
func (h *ModulesHandler) HandleTogglePermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req sdk.TogglePermissionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	created, err := h.ModulesService.TogglePermission(ctx, req.RoleID, req.ModuleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleNotFound):
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgRoleNotExist}).WriteError(w)
		case errors.Is(err, service.ErrModuleNotFound):
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgModuleNotExist}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("permission toggle failed", "error", err)
			sdk.ErrServerError.WriteError(w)
		}
		return
	}

	message := sdk.MsgPermissionDeleted
	if created {
		message = sdk.MsgPermissionCreated
	}
	sdk.WriteSuccess(w, http.StatusOK, message, nil)
}

package http

import (
	"errors"
	"net/http"

	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/spendlog/spendlog/pkg/slogx"
)

// CategoriesHandler serves the authenticated user's expense categories.
type CategoriesHandler struct {
	CategoriesService *service.CategoriesService
}

//	@Summary	Create category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		request	body		sdk.CategoryRequest	true	"New category"
//	@Success	201		{object}	sdk.Envelope{data=sdk.CategoryData}
//	@Failure	409		{object}	sdk.Envelope	"Name already exists for this user"
//	@Security	BearerAuth
//	@Router		/v1/categories [post]
func (h *CategoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	var req sdk.CategoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	cat, err := h.CategoriesService.CreateCategory(ctx, principal.UserID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrCategoryAlreadyExists) {
			(&sdk.APIError{StatusCode: http.StatusConflict, Message: sdk.MsgCategoryNameAlreadyExists}).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("category creation failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	sdk.WriteSuccess(w, http.StatusCreated, sdk.MsgCategoryCreated, toCategoryData(cat))
}

//	@Summary	List categories
//	@Tags		Categories
//	@Produce	json
//	@Success	200	{object}	sdk.Envelope{data=[]sdk.CategoryData}
//	@Security	BearerAuth
//	@Router		/v1/categories [get]
func (h *CategoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	cats, err := h.CategoriesService.ListCategories(ctx, principal.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("category listing failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	data := make([]sdk.CategoryData, len(cats))
	for i, c := range cats {
		data[i] = toCategoryData(c)
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgCategoriesRetrieved, data)
}

//	@Summary	Get category
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		int	true	"Category id"
//	@Success	200	{object}	sdk.Envelope{data=sdk.CategoryData}
//	@Failure	404	{object}	sdk.Envelope	"Category does not exist"
//	@Security	BearerAuth
//	@Router		/v1/categories/{id} [get]
func (h *CategoriesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	cat, err := h.CategoriesService.GetCategory(ctx, principal.UserID, id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgCategoryNotExist}).WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("category lookup failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgCategoriesRetrieved, toCategoryData(cat))
}

//	@Summary	Update category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Category id"
//	@Param		request	body		sdk.CategoryRequest	true	"New fields"
//	@Success	200		{object}	sdk.Envelope{data=sdk.CategoryData}
//	@Failure	404		{object}	sdk.Envelope	"Category does not exist"
//	@Security	BearerAuth
//	@Router		/v1/categories/{id} [put]
func (h *CategoriesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	var req sdk.CategoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	cat, err := h.CategoriesService.UpdateCategory(ctx, principal.UserID, id, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgCategoryNotExist}).WriteError(w)
		case errors.Is(err, service.ErrCategoryAlreadyExists):
			(&sdk.APIError{StatusCode: http.StatusConflict, Message: sdk.MsgCategoryNameAlreadyExists}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("category update failed", "error", err)
			sdk.ErrServerError.WriteError(w)
		}
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgCategoryUpdated, toCategoryData(cat))
}

//	@Summary	Delete category
//	@Description	Refused while expenses still reference the category.
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		int	true	"Category id"
//	@Success	200	{object}	sdk.Envelope
//	@Failure	404	{object}	sdk.Envelope	"Category does not exist"
//	@Failure	409	{object}	sdk.Envelope	"Category has expenses"
//	@Security	BearerAuth
//	@Router		/v1/categories/{id} [delete]
func (h *CategoriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	if err := h.CategoriesService.DeleteCategory(ctx, principal.UserID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgCategoryNotExist}).WriteError(w)
		case errors.Is(err, service.ErrCategoryInUse):
			(&sdk.APIError{StatusCode: http.StatusConflict, Message: sdk.MsgCategoryInUse}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("category deletion failed", "error", err)
			sdk.ErrServerError.WriteError(w)
		}
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgCategoryDeleted, nil)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/spendlog/spendlog/pkg/slogx"
)

// ExpensesHandler serves the authenticated user's expenses.
type ExpensesHandler struct {
	ExpensesService *service.ExpensesService
}

func parseSpentAt(s string) (time.Time, error) {
	return time.Parse(spentAtLayout, s)
}

//	@Summary	Create expense
//	@Tags		Expenses
//	@Accept		json
//	@Produce	json
//	@Param		request	body		sdk.ExpenseRequest	true	"New expense"
//	@Success	201		{object}	sdk.Envelope{data=sdk.ExpenseData}
//	@Failure	404		{object}	sdk.Envelope	"Category does not exist"
//	@Failure	422		{object}	sdk.Envelope	"Validation error or non-positive amount"
//	@Security	BearerAuth
//	@Router		/v1/expenses [post]
func (h *ExpensesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	var req sdk.ExpenseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	spentAt, err := parseSpentAt(req.SpentAt)
	if err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	expense, err := h.ExpensesService.CreateExpense(ctx, principal.UserID, req.CategoryID, req.Amount, req.Description, spentAt)
	if err != nil {
		h.writeExpenseError(w, ctx, err, "expense creation failed")
		return
	}

	sdk.WriteSuccess(w, http.StatusCreated, sdk.MsgExpenseCreated, toExpenseData(expense))
}

//	@Summary	List expenses
//	@Tags		Expenses
//	@Produce	json
//	@Param		offset	query		int		false	"Page offset"
//	@Param		limit	query		int		false	"Page size"
//	@Param		sort_by	query		string	false	"Sort field"
//	@Param		order	query		string	false	"asc or desc"
//	@Success	200		{object}	sdk.Envelope{data=sdk.ExpenseListData}
//	@Failure	422		{object}	sdk.Envelope	"Invalid sort field or order"
//	@Security	BearerAuth
//	@Router		/v1/expenses [get]
func (h *ExpensesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)
	q := r.URL.Query()

	offset, _ := strconv.Atoi(q.Get("offset"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	expenses, total, err := h.ExpensesService.ListExpenses(ctx, principal.UserID, offset, limit, q.Get("sort_by"), q.Get("order"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSortField):
			(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgInvalidSortField}).WriteError(w)
		case errors.Is(err, service.ErrInvalidSortOrder):
			(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgInvalidSortOrder}).WriteError(w)
		default:
			slogx.FromContext(ctx).Error("expense listing failed", "error", err)
			sdk.ErrServerError.WriteError(w)
		}
		return
	}

	data := sdk.ExpenseListData{
		Expenses: make([]sdk.ExpenseData, len(expenses)),
		Total:    total,
	}
	for i, e := range expenses {
		data.Expenses[i] = toExpenseData(e)
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgExpensesRetrieved, data)
}

//	@Summary	Get expense
//	@Tags		Expenses
//	@Produce	json
//	@Param		id	path		int	true	"Expense id"
//	@Success	200	{object}	sdk.Envelope{data=sdk.ExpenseData}
//	@Failure	404	{object}	sdk.Envelope	"Expense does not exist"
//	@Security	BearerAuth
//	@Router		/v1/expenses/{id} [get]
func (h *ExpensesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	expense, err := h.ExpensesService.GetExpense(ctx, principal.UserID, id)
	if err != nil {
		h.writeExpenseError(w, ctx, err, "expense lookup failed")
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgExpensesRetrieved, toExpenseData(expense))
}

//	@Summary	Update expense
//	@Tags		Expenses
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Expense id"
//	@Param		request	body		sdk.ExpenseRequest	true	"New fields"
//	@Success	200		{object}	sdk.Envelope{data=sdk.ExpenseData}
//	@Failure	404		{object}	sdk.Envelope	"Expense or category does not exist"
//	@Security	BearerAuth
//	@Router		/v1/expenses/{id} [put]
func (h *ExpensesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	var req sdk.ExpenseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	spentAt, err := parseSpentAt(req.SpentAt)
	if err != nil {
		sdk.ErrValidation.WriteError(w)
		return
	}

	expense, err := h.ExpensesService.UpdateExpense(ctx, principal.UserID, id, req.CategoryID, req.Amount, req.Description, spentAt)
	if err != nil {
		h.writeExpenseError(w, ctx, err, "expense update failed")
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgExpenseUpdated, toExpenseData(expense))
}

//	@Summary	Delete expense
//	@Tags		Expenses
//	@Produce	json
//	@Param		id	path		int	true	"Expense id"
//	@Success	200	{object}	sdk.Envelope
//	@Failure	404	{object}	sdk.Envelope	"Expense does not exist"
//	@Security	BearerAuth
//	@Router		/v1/expenses/{id} [delete]
func (h *ExpensesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	id := pathID(r, "id")
	if id == 0 {
		sdk.ErrValidation.WriteError(w)
		return
	}

	if err := h.ExpensesService.DeleteExpense(ctx, principal.UserID, id); err != nil {
		h.writeExpenseError(w, ctx, err, "expense deletion failed")
		return
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgExpenseDeleted, nil)
}

func (h *ExpensesHandler) writeExpenseError(w http.ResponseWriter, ctx context.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrExpenseNotFound):
		(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgExpenseNotExist}).WriteError(w)
	case errors.Is(err, service.ErrCategoryNotFound):
		(&sdk.APIError{StatusCode: http.StatusNotFound, Message: sdk.MsgCategoryNotExist}).WriteError(w)
	case errors.Is(err, service.ErrInvalidAmount):
		(&sdk.APIError{StatusCode: http.StatusUnprocessableEntity, Message: sdk.MsgInvalidAmount}).WriteError(w)
	default:
		slogx.FromContext(ctx).Error(logMsg, "error", err)
		sdk.ErrServerError.WriteError(w)
	}
}

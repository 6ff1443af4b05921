package http

import (
	"net/http"

	"github.com/spendlog/spendlog/internal/service"
	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/spendlog/spendlog/pkg/slogx"
)

// ReportsHandler serves spend reports. Routes are additionally gated on the
// dashboard module permission.
type ReportsHandler struct {
	ExpensesService *service.ExpensesService
}

// HandleSpendReport aggregates the user's spend.
//
//	@Summary		Spend report
//	@Description	Spend totals per category and per calendar month for the authenticated user. Requires the dashboard module permission.
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{object}	sdk.Envelope{data=sdk.SpendReportData}
//	@Failure		403	{object}	sdk.Envelope	"Role lacks the dashboard module permission"
//	@Security		BearerAuth
//	@Router			/v1/reports/spend [get]
func (h *ReportsHandler) HandleSpendReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal, _ := PrincipalFromContext(ctx)

	byCategory, byMonth, err := h.ExpensesService.SpendReport(ctx, principal.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("spend report failed", "error", err)
		sdk.ErrServerError.WriteError(w)
		return
	}

	data := sdk.SpendReportData{
		ByCategory: make([]sdk.CategorySpendData, len(byCategory)),
		ByMonth:    make([]sdk.MonthSpendData, len(byMonth)),
	}
	for i, c := range byCategory {
		data.ByCategory[i] = sdk.CategorySpendData{
			CategoryID:   c.CategoryID,
			CategoryName: c.CategoryName,
			Total:        c.Total,
		}
	}
	for i, m := range byMonth {
		data.ByMonth[i] = sdk.MonthSpendData{Year: m.Year, Month: m.Month, Total: m.Total}
	}

	sdk.WriteSuccess(w, http.StatusOK, sdk.MsgReportRetrieved, data)
}

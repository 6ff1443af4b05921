package e2e_test

import (
	"net/http"
	"testing"

	"github.com/spendlog/spendlog/pkg/sdk"
	"github.com/stretchr/testify/require"
)

// TestExpenseTrackingFlow walks the full tenant flow: categories, expenses,
// and the spend report, all scoped to the logged-in account.
func TestExpenseTrackingFlow(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.NewClient(baseURL)
	user := loginSeeded(t, client, userEmail)

	food, err := user.CreateCategory(t.Context(), sdk.CategoryRequest{
		Name:        "Food",
		Description: "Groceries and eating out",
	})
	require.NoError(t, err)

	rent, err := user.CreateCategory(t.Context(), sdk.CategoryRequest{Name: "Rent"})
	require.NoError(t, err)

	t.Run("duplicate category name is rejected", func(t *testing.T) {
		_, err := user.CreateCategory(t.Context(), sdk.CategoryRequest{Name: "Food"})
		assertAPIError(t, err, http.StatusConflict, "Duplicate category")
	})

	for _, e := range []sdk.ExpenseRequest{
		{CategoryID: food.ID, Amount: 52.40, Description: "groceries", SpentAt: "2026-01-05"},
		{CategoryID: food.ID, Amount: 27.60, Description: "dinner", SpentAt: "2026-01-18"},
		{CategoryID: rent.ID, Amount: 1200, Description: "january rent", SpentAt: "2026-01-01"},
	} {
		_, err := user.CreateExpense(t.Context(), e)
		require.NoError(t, err, "Create expense should succeed")
	}

	t.Run("listing is paginated", func(t *testing.T) {
		list, err := user.ListExpenses(t.Context(), 0, 2, "spent_at", "asc")
		require.NoError(t, err)
		require.Len(t, list.Expenses, 2)
		require.EqualValues(t, 3, list.Total)
	})

	t.Run("spend report aggregates by category and month", func(t *testing.T) {
		report, err := user.SpendReport(t.Context())
		require.NoError(t, err)

		totals := map[string]float64{}
		for _, c := range report.ByCategory {
			totals[c.CategoryName] = c.Total
		}
		require.InDelta(t, 80.0, totals["Food"], 0.001)
		require.InDelta(t, 1200.0, totals["Rent"], 0.001)

		require.Len(t, report.ByMonth, 1)
		require.Equal(t, 2026, report.ByMonth[0].Year)
		require.Equal(t, 1, report.ByMonth[0].Month)
		require.InDelta(t, 1280.0, report.ByMonth[0].Total, 0.001)
	})

	t.Run("category with expenses cannot be deleted", func(t *testing.T) {
		err := user.DeleteCategory(t.Context(), rent.ID)
		assertAPIError(t, err, http.StatusConflict, "Deleting a category in use")
	})
}

// TestExpensesAreTenantScoped verifies one account cannot see or spend
// against another account's categories and expenses.
func TestExpensesAreTenantScoped(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.NewClient(baseURL)
	user := loginSeeded(t, client, userEmail)
	admin := loginSeeded(t, client, adminEmail)

	category, err := user.CreateCategory(t.Context(), sdk.CategoryRequest{Name: "Travel"})
	require.NoError(t, err)

	expense, err := user.CreateExpense(t.Context(), sdk.ExpenseRequest{
		CategoryID: category.ID,
		Amount:     300,
		SpentAt:    "2026-02-10",
	})
	require.NoError(t, err)

	t.Run("other accounts cannot read the category", func(t *testing.T) {
		_, err := admin.GetCategory(t.Context(), category.ID)
		assertAPIError(t, err, http.StatusNotFound, "Cross-account category read")
	})

	t.Run("other accounts cannot read the expense", func(t *testing.T) {
		_, err := admin.GetExpense(t.Context(), expense.ID)
		assertAPIError(t, err, http.StatusNotFound, "Cross-account expense read")
	})

	t.Run("other accounts cannot spend against the category", func(t *testing.T) {
		_, err := admin.CreateExpense(t.Context(), sdk.ExpenseRequest{
			CategoryID: category.ID,
			Amount:     10,
			SpentAt:    "2026-02-11",
		})
		assertAPIError(t, err, http.StatusNotFound, "Cross-account expense create")
	})

	t.Run("listings stay separate", func(t *testing.T) {
		adminList, err := admin.ListExpenses(t.Context(), 0, 100, "", "")
		require.NoError(t, err)
		require.EqualValues(t, 0, adminList.Total)

		userList, err := user.ListExpenses(t.Context(), 0, 100, "", "")
		require.NoError(t, err)
		require.EqualValues(t, 1, userList.Total)
	})
}

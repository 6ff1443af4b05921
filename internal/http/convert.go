package http

import (
	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/pkg/sdk"
)

// spentAtLayout is the wire format for expense dates.
const spentAtLayout = "2006-01-02"

func toUserData(u domain.User) sdk.UserData {
	return sdk.UserData{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toRoleData(r domain.Role) sdk.RoleData {
	return sdk.RoleData{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toModuleData(m domain.Module) sdk.ModuleData {
	return sdk.ModuleData{
		ID:          m.ID,
		Name:        m.Name,
		LinkName:    m.LinkName,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toCategoryData(c domain.Category) sdk.CategoryData {
	return sdk.CategoryData{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toExpenseData(e domain.Expense) sdk.ExpenseData {
	return sdk.ExpenseData{
		ID:          e.ID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Description: e.Description,
		SpentAt:     e.SpentAt.Format(spentAtLayout),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

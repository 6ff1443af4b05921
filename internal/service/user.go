package service

import (
	"context"
	"errors"
	"unicode"

	"github.com/spendlog/spendlog/internal/domain"
	"github.com/spendlog/spendlog/internal/store"
	"github.com/spendlog/spendlog/pkg/cryptox"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid role")
	ErrUserNotFound           = errors.New("user not found")
	ErrWeakPassword           = errors.New("password does not meet strength requirements")
	ErrPasswordIncorrect      = errors.New("password incorrect")
	ErrInvalidSortField       = errors.New("invalid sort field")
	ErrInvalidSortOrder       = errors.New("invalid sort order")
)

// UsersService manages user accounts.
type UsersService struct {
	Store store.Store
}

// PasswordIsStrong reports whether a password is at least 8 characters and
// carries at least one letter, one digit and one special character.
func PasswordIsStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	var letter, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return letter && digit && special
}

// userSortFields are the sort keys accepted on user listings.
var userSortFields = map[string]bool{
	"id":         true,
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"created_at": true,
}

// ValidateSort checks a sort field against an allow-list and the order
// against asc/desc. Empty values fall back to defaults.
func ValidateSort(allowed map[string]bool, sortBy, order string) (string, string, error) {
	if sortBy != "" && !allowed[sortBy] {
		return "", "", ErrInvalidSortField
	}
	switch order {
	case "", "asc", "desc":
	default:
		return "", "", ErrInvalidSortOrder
	}
	return sortBy, order, nil
}

// CreateUser registers a new user. The password is strength-checked and
// bcrypt-hashed; the role must exist.
func (s *UsersService) CreateUser(ctx context.Context, firstName, lastName, email, password string, roleID int64) (domain.User, error) {
	if !PasswordIsStrong(password) {
		return domain.User{}, ErrWeakPassword
	}

	if _, err := s.Store.Roles().GetRoleByID(ctx, roleID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidRole
		}
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		RoleID:       roleID,
	}

	id, err := s.Store.Users().CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailAlreadyRegistered
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, id)
}

// ListUsers returns a validated, paginated page of users plus the total
// count.
func (s *UsersService) ListUsers(ctx context.Context, offset, limit int, sortBy, order string) ([]domain.User, int64, error) {
	sortBy, order, err := ValidateSort(userSortFields, sortBy, order)
	if err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.Store.Users().ListUsers(ctx, store.ListParams{
		Offset: offset,
		Limit:  limit,
		SortBy: sortBy,
		Order:  order,
	})
	if err != nil {
		return nil, 0, err
	}

	total, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// GetUser fetches one user.
func (s *UsersService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

// UpdateUser changes a user's name fields.
func (s *UsersService) UpdateUser(ctx context.Context, id int64, firstName, lastName string) (domain.User, error) {
	if err := s.Store.Users().UpdateUser(ctx, id, firstName, lastName); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, id)
}

// ChangePassword verifies the old password before installing the new one.
func (s *UsersService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !cryptox.VerifyPassword(oldPassword, user.PasswordHash) {
		return ErrPasswordIncorrect
	}
	if !PasswordIsStrong(newPassword) {
		return ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Store.Users().UpdatePasswordHash(ctx, id, hash)
}

// DeleteUser removes a user. Categories and expenses cascade with the row.
func (s *UsersService) DeleteUser(ctx context.Context, id int64) error {
	err := s.Store.Users().DeleteUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

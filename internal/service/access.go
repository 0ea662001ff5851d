package service

import (
	"context"
	"fmt"

	"taskflow/internal/apperrors"
	"taskflow/internal/models"
	"taskflow/internal/repository"
)

// AccessService is the single capability check behind every role-gated route.
type AccessService struct {
	users repository.Users
}

func NewAccessService(users repository.Users) *AccessService {
	return &AccessService{users: users}
}

// AuthorizedAs loads the user and checks the role against the stored flags.
// A token for a user that no longer exists is unauthenticated, not forbidden.
func (s *AccessService) AuthorizedAs(ctx context.Context, userID int, role models.Role) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "look up user", err)
	}
	if u == nil {
		return nil, ErrTokenInvalid
	}
	if !u.Has(role) {
		return nil, apperrors.New(apperrors.CodeForbidden, fmt.Sprintf("%s role required", role))
	}
	return u, nil
}

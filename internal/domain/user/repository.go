package user

import (
	"context"

	vo "atgs/internal/domain/user/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role vo.Role) ([]*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}

type ListFilter struct {
	Role *vo.Role
}

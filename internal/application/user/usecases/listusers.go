package usecases

import (
	"context"

	"atgs/internal/application/user/dto"
	"atgs/internal/domain/user"
	uservo "atgs/internal/domain/user/valueobjects"
	"atgs/internal/shared/errors"
	"atgs/internal/shared/logger"
)

type ListUsersQuery struct {
	Role *string
}

type ListUsersResult struct {
	Users []dto.UserDTO
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	filter := user.ListFilter{}
	if query.Role != nil {
		role := uservo.Role(*query.Role)
		filter.Role = &role
	}

	users, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	return &ListUsersResult{Users: dto.ToUserDTOs(users)}, nil
}

package usecases

import (
	"context"

	"atgs/internal/application/user/dto"
	"atgs/internal/domain/user"
	"atgs/internal/shared/errors"
	"atgs/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	found, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}
	if found == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return dto.ToUserDTO(found), nil
}

package usecases

import (
	"context"
	"fmt"

	"atgs/internal/application/user/dto"
	"atgs/internal/domain/user"
	uservo "atgs/internal/domain/user/valueobjects"
	"atgs/internal/shared/errors"
	"atgs/internal/shared/logger"
)

type SignupCommand struct {
	Email       string
	DisplayName string
	Role        string
}

type SignupExecutor interface {
	Execute(ctx context.Context, cmd SignupCommand) (*dto.UserDTO, error)
}

type SignupUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewSignupUseCase(userRepo user.Repository, logger logger.Interface) *SignupUseCase {
	return &SignupUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing signup use case", "email", cmd.Email)

	if len(cmd.Email) == 0 || len(cmd.DisplayName) == 0 {
		return nil, errors.NewValidationError("email and display name are required")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "email", cmd.Email, "error", err)
		return nil, errors.NewInternalError("failed to check email")
	}
	if exists {
		return nil, errors.NewConflictError(fmt.Sprintf("user with email %s already exists", cmd.Email))
	}

	newUser, err := user.NewUser(cmd.Email, cmd.DisplayName, uservo.Role(cmd.Role))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// Concurrent signups race past the existence check; the unique index
		// on email is authoritative.
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("user with email %s already exists", cmd.Email))
		}
		uc.logger.Errorw("failed to create user", "email", cmd.Email, "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user signed up successfully", "user_id", newUser.ID(), "email", cmd.Email)

	return dto.ToUserDTO(newUser), nil
}

package usecases

import (
	"context"

	"atgs/internal/application/ticket/dto"
	"atgs/internal/domain/ticket"
	"atgs/internal/domain/user"
	"atgs/internal/shared/errors"
	"atgs/internal/shared/logger"
	"atgs/internal/shared/services/markdown"
)

type ListTicketsQuery struct {
	UserID uint
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		markdown:   markdownSvc,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Debugw("executing list tickets use case", "user_id", query.UserID)

	viewer, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load viewer", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if viewer == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	items, err := uc.ticketRepo.ListVisibleTo(ctx, viewer)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	dtos := make([]dto.TicketDTO, 0, len(items))
	for _, item := range items {
		ticketDTO := dto.ToTicketDTO(item.Ticket)
		ticketDTO.Author = dto.ToAuthorDTO(item.Author)

		rendered, err := uc.markdown.ToHTMLSanitized(item.Ticket.Message())
		if err != nil {
			uc.logger.Warnw("failed to render ticket message",
				"ticket_id", item.Ticket.ID(), "error", err)
		} else {
			ticketDTO.MessageHTML = rendered
		}

		dtos = append(dtos, *ticketDTO)
	}

	return &ListTicketsResult{Tickets: dtos}, nil
}

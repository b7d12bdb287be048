package usecases

import (
	"context"

	"atgs/internal/application/ticket/dto"
	"atgs/internal/domain/ticket"
	"atgs/internal/domain/user"
	uservo "atgs/internal/domain/user/valueobjects"
	"atgs/internal/infrastructure/notification"
	"atgs/internal/shared/errors"
	"atgs/internal/shared/logger"
)

type SubmitTicketCommand struct {
	AuthorID   uint
	Department string
	Priority   *int
	Subject    string
	Message    string
}

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*dto.TicketDTO, error)
}

type SubmitTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	notifier   notification.Notifier
	logger     logger.Interface
}

// NewSubmitTicketUseCase creates the submit use case. notifier may be nil
// when email notifications are disabled.
func NewSubmitTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	notifier notification.Notifier,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing submit ticket use case",
		"author_id", cmd.AuthorID, "subject", cmd.Subject)

	if len(cmd.Subject) == 0 {
		return nil, errors.NewValidationError("subject is required")
	}
	if len(cmd.Message) == 0 {
		return nil, errors.NewValidationError("message is required")
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		uc.logger.Errorw("failed to load author", "author_id", cmd.AuthorID, "error", err)
		return nil, errors.NewInternalError("failed to load user")
	}
	if author == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	newTicket, err := ticket.NewTicket(cmd.AuthorID, cmd.Department, cmd.Priority, cmd.Subject, cmd.Message)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	uc.logger.Infow("ticket submitted successfully",
		"ticket_id", newTicket.ID(), "author_id", cmd.AuthorID)

	uc.notifyAdvisors(ctx, newTicket, author)

	return dto.ToTicketDTO(newTicket), nil
}

// notifyAdvisors emails the advising staff about the new ticket. Failures are
// logged and never surface to the submitter.
func (uc *SubmitTicketUseCase) notifyAdvisors(ctx context.Context, t *ticket.Ticket, author *user.User) {
	if uc.notifier == nil {
		return
	}

	advisors, err := uc.userRepo.ListByRole(ctx, uservo.RoleAdvisor)
	if err != nil {
		uc.logger.Warnw("failed to load advisors for notification", "error", err)
		return
	}

	recipients := make([]string, 0, len(advisors))
	for _, a := range advisors {
		recipients = append(recipients, a.Email())
	}

	err = uc.notifier.NotifyTicketSubmitted(ctx, recipients, notification.TicketNotification{
		TicketID:    t.ID(),
		Subject:     t.Subject(),
		Department:  t.Department(),
		AuthorName:  author.DisplayName(),
		AuthorEmail: author.Email(),
	})
	if err != nil {
		uc.logger.Warnw("failed to send ticket notification",
			"ticket_id", t.ID(), "error", err)
	}
}

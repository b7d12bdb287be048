package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atgs/internal/domain/ticket"
	ticketvo "atgs/internal/domain/ticket/valueobjects"
	"atgs/internal/domain/user"
	uservo "atgs/internal/domain/user/valueobjects"
	"atgs/internal/shared/errors"
	"atgs/internal/shared/logger"
)

func reconstructedUser(t *testing.T, id uint, role uservo.Role) *user.User {
	u, err := user.ReconstructUser(id, fmt.Sprintf("user%d@test.local", id), "Test User", role, time.Now())
	require.NoError(t, err)
	return u
}

func reconstructedTicket(t *testing.T, id, authorID uint, status ticketvo.Status) *ticket.Ticket {
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, authorID, nil, ticket.DefaultDepartment, nil,
		"Subject", "**Message**", status, now, now)
	require.NoError(t, err)
	return tk
}

func TestListTicketsUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("returns tickets with authors and rendered messages", func(t *testing.T) {
		viewer := reconstructedUser(t, 1, uservo.RoleAdvisor)
		author := reconstructedUser(t, 2, uservo.RoleStudent)

		ticketRepo := &mockTicketRepository{
			ListVisibleToFunc: func(ctx context.Context, v *user.User) ([]ticket.WithAuthor, error) {
				assert.Equal(t, viewer.ID(), v.ID())
				return []ticket.WithAuthor{
					{Ticket: reconstructedTicket(t, 10, author.ID(), ticketvo.StatusOpen), Author: author},
				}, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return viewer, nil
			},
		}
		md := &mockMarkdownService{
			ToHTMLSanitizedFunc: func(markdown string) (string, error) {
				return "<strong>Message</strong>", nil
			},
		}

		uc := NewListTicketsUseCase(ticketRepo, userRepo, md, log)
		result, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 1})

		require.NoError(t, err)
		require.Len(t, result.Tickets, 1)
		item := result.Tickets[0]
		assert.Equal(t, uint(10), item.ID)
		assert.Equal(t, "open", item.Status)
		require.NotNil(t, item.Author)
		assert.Equal(t, author.Email(), item.Author.Email)
		assert.Equal(t, "<strong>Message</strong>", item.MessageHTML)
	})

	t.Run("unknown viewer returns not found", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return nil, nil
			},
		}

		uc := NewListTicketsUseCase(&mockTicketRepository{}, userRepo, &mockMarkdownService{}, log)
		_, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 99})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("empty listing returns empty slice", func(t *testing.T) {
		viewer := reconstructedUser(t, 3, uservo.RoleStudent)
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return viewer, nil
			},
		}
		ticketRepo := &mockTicketRepository{
			ListVisibleToFunc: func(ctx context.Context, v *user.User) ([]ticket.WithAuthor, error) {
				return []ticket.WithAuthor{}, nil
			},
		}

		uc := NewListTicketsUseCase(ticketRepo, userRepo, &mockMarkdownService{}, log)
		result, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 3})

		require.NoError(t, err)
		assert.NotNil(t, result.Tickets)
		assert.Empty(t, result.Tickets)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		viewer := reconstructedUser(t, 4, uservo.RoleAdmin)
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return viewer, nil
			},
		}
		ticketRepo := &mockTicketRepository{
			ListVisibleToFunc: func(ctx context.Context, v *user.User) ([]ticket.WithAuthor, error) {
				return nil, fmt.Errorf("connection refused")
			},
		}

		uc := NewListTicketsUseCase(ticketRepo, userRepo, &mockMarkdownService{}, log)
		_, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 4})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	})

	t.Run("render failure leaves html empty but keeps ticket", func(t *testing.T) {
		viewer := reconstructedUser(t, 5, uservo.RoleAdvisor)
		author := reconstructedUser(t, 6, uservo.RoleStudent)
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return viewer, nil
			},
		}
		ticketRepo := &mockTicketRepository{
			ListVisibleToFunc: func(ctx context.Context, v *user.User) ([]ticket.WithAuthor, error) {
				return []ticket.WithAuthor{
					{Ticket: reconstructedTicket(t, 11, author.ID(), ticketvo.StatusClosed), Author: author},
				}, nil
			},
		}
		md := &mockMarkdownService{
			ToHTMLSanitizedFunc: func(markdown string) (string, error) {
				return "", fmt.Errorf("render failed")
			},
		}

		uc := NewListTicketsUseCase(ticketRepo, userRepo, md, log)
		result, err := uc.Execute(context.Background(), ListTicketsQuery{UserID: 5})

		require.NoError(t, err)
		require.Len(t, result.Tickets, 1)
		assert.Empty(t, result.Tickets[0].MessageHTML)
	})
}

package usecases

import (
	"context"

	"atgs/internal/domain/ticket"
	"atgs/internal/domain/user"
	uservo "atgs/internal/domain/user/valueobjects"
	"atgs/internal/infrastructure/notification"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc       func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListVisibleToFunc func(ctx context.Context, viewer *user.User) ([]ticket.WithAuthor, error)
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListVisibleTo(ctx context.Context, viewer *user.User) ([]ticket.WithAuthor, error) {
	if m.ListVisibleToFunc != nil {
		return m.ListVisibleToFunc(ctx, viewer)
	}
	return nil, nil
}

func (m *mockTicketRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc      func(ctx context.Context, ids []uint) ([]*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListByRoleFunc    func(ctx context.Context, role uservo.Role) ([]*user.User, error)
	ListFunc          func(ctx context.Context, filter user.ListFilter) ([]*user.User, error)
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role uservo.Role) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockMarkdownService struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return markdown, nil
}

type mockNotifier struct {
	NotifyTicketSubmittedFunc func(ctx context.Context, recipients []string, n notification.TicketNotification) error
}

func (m *mockNotifier) NotifyTicketSubmitted(ctx context.Context, recipients []string, n notification.TicketNotification) error {
	if m.NotifyTicketSubmittedFunc != nil {
		return m.NotifyTicketSubmittedFunc(ctx, recipients, n)
	}
	return nil
}

package dto

import (
	"time"

	"atgs/internal/domain/ticket"
	"atgs/internal/domain/user"
)

type AuthorDTO struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type TicketDTO struct {
	ID          uint       `json:"id"`
	AuthorID    uint       `json:"author_id"`
	AssigneeID  *uint      `json:"assignee_id"`
	Department  string     `json:"department"`
	Priority    *int       `json:"priority"`
	Subject     string     `json:"subject"`
	Message     string     `json:"message"`
	MessageHTML string     `json:"message_html,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUpdated time.Time  `json:"last_updated"`
	Author      *AuthorDTO `json:"author,omitempty"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:          t.ID(),
		AuthorID:    t.AuthorID(),
		AssigneeID:  t.AssigneeID(),
		Department:  t.Department(),
		Priority:    t.Priority(),
		Subject:     t.Subject(),
		Message:     t.Message(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt(),
		LastUpdated: t.LastUpdated(),
	}
}

func ToAuthorDTO(u *user.User) *AuthorDTO {
	if u == nil {
		return nil
	}

	return &AuthorDTO{
		ID:          u.ID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
	}
}

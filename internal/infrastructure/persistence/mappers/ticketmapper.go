package mappers

import (
	"atgs/internal/domain/ticket"
	ticketvo "atgs/internal/domain/ticket/valueobjects"
	"atgs/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type ticketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapperImpl{}
}

func (m *ticketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		AuthorID:    t.AuthorID(),
		AssigneeID:  t.AssigneeID(),
		Department:  t.Department(),
		Priority:    t.Priority(),
		Subject:     t.Subject(),
		Message:     t.Message(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		LastUpdated: t.LastUpdated().UnixMilli(),
	}
}

func (m *ticketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.AuthorID,
		model.AssigneeID,
		model.Department,
		model.Priority,
		model.Subject,
		model.Message,
		ticketvo.Status(model.Status),
		millisToTime(model.CreatedAt),
		millisToTime(model.LastUpdated),
	)
}

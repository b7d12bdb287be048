package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atgs/internal/domain/ticket"
	"atgs/internal/domain/user"
	"atgs/internal/infrastructure/persistence/mappers"
	"atgs/internal/infrastructure/persistence/models"
	"atgs/internal/shared/db"
)

// statusRankExpr orders listings open -> in progress -> closed, with any
// out-of-vocabulary status after all three.
const statusRankExpr = "CASE status WHEN 'open' THEN 1 WHEN 'in progress' THEN 2 WHEN 'closed' THEN 3 ELSE 4 END"

// TicketRepository implements the ticket repository interface on GORM.
type TicketRepository struct {
	db           *gorm.DB
	ticketMapper mappers.TicketMapper
	userMapper   mappers.UserMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:           database,
		ticketMapper: mappers.NewTicketMapper(),
		userMapper:   mappers.NewUserMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.ticketMapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.ticketMapper.ToDomain(&model)
}

// ListVisibleTo returns tickets the viewer may see. Advisors and admins see
// everything; everyone else sees only their own submissions. Authors are
// resolved in a single batched query so callers never do per-ticket lookups.
func (r *TicketRepository) ListVisibleTo(ctx context.Context, viewer *user.User) ([]ticket.WithAuthor, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if !viewer.CanViewAllTickets() {
		query = query.Where("author_id = ?", viewer.ID())
	}

	var ticketModels []models.TicketModel
	if err := query.
		Order(statusRankExpr).
		Order("last_updated DESC").
		Order("id ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	authors, err := r.loadAuthors(ctx, ticketModels)
	if err != nil {
		return nil, err
	}

	result := make([]ticket.WithAuthor, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.ticketMapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, err
		}

		author, ok := authors[t.AuthorID()]
		if !ok {
			return nil, fmt.Errorf("ticket %d references missing author %d", t.ID(), t.AuthorID())
		}

		result = append(result, ticket.WithAuthor{Ticket: t, Author: author})
	}

	return result, nil
}

func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}

// loadAuthors fetches the distinct authors of the given tickets in one query.
func (r *TicketRepository) loadAuthors(ctx context.Context, ticketModels []models.TicketModel) (map[uint]*user.User, error) {
	if len(ticketModels) == 0 {
		return map[uint]*user.User{}, nil
	}

	seen := make(map[uint]bool, len(ticketModels))
	ids := make([]uint, 0, len(ticketModels))
	for i := range ticketModels {
		if !seen[ticketModels[i].AuthorID] {
			seen[ticketModels[i].AuthorID] = true
			ids = append(ids, ticketModels[i].AuthorID)
		}
	}

	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket authors: %w", err)
	}

	authors := make(map[uint]*user.User, len(userModels))
	for i := range userModels {
		author, err := r.userMapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		authors[author.ID()] = author
	}

	return authors, nil
}

// Package seeds populates an empty database with a development fixture:
// a fixed user roster and a batch of randomized tickets for exercising
// the listing order.
package seeds

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"atgs/internal/infrastructure/persistence/models"
	"atgs/internal/shared/db"
	"atgs/internal/shared/logger"
)

const ticketCount = 10

var seedUsers = []models.UserModel{
	{Email: "kyran@uoregon.edu", DisplayName: "Kyran McCown", Role: "admin"},
	{Email: "bardiaah@uoregon.edu", DisplayName: "Bardia Ahmadi Dafchahi", Role: "admin"},
	{Email: "mmelner@uoregon.edu", DisplayName: "Max Melner", Role: "admin"},
	{Email: "advisor1@test.local", DisplayName: "Test Advisor 1", Role: "advisor"},
	{Email: "advisor2@test.local", DisplayName: "Test Advisor 2", Role: "advisor"},
	{Email: "advisor3@test.local", DisplayName: "Test Advisor 3", Role: "advisor"},
	{Email: "student1@test.local", DisplayName: "Test Student 1", Role: "student"},
	{Email: "student2@test.local", DisplayName: "Test Student 2", Role: "student"},
	{Email: "student3@test.local", DisplayName: "Test Student 3", Role: "student"},
	{Email: "student4@test.local", DisplayName: "Test Student 4", Role: "student"},
	{Email: "student5@test.local", DisplayName: "Test Student 5", Role: "student"},
}

var (
	ticketStatuses    = []string{"open", "in progress", "closed"}
	ticketDepartments = []string{"Tykeson", "Computer Science", "Financial Aid", "Housing"}
)

// Runner seeds users and tickets. Seeding only happens when both tables are
// empty, so running it repeatedly is safe.
type Runner struct {
	db        *gorm.DB
	txManager *db.TxManager
	rng       *rand.Rand
	logger    logger.Interface
}

// NewRunner creates a seed runner. rng drives every random choice so tests
// can pass a fixed-seed source.
func NewRunner(database *gorm.DB, rng *rand.Rand, log logger.Interface) *Runner {
	return &Runner{
		db:        database,
		txManager: db.NewTxManager(database),
		rng:       rng,
		logger:    log,
	}
}

// Run seeds the database inside a single transaction.
func (r *Runner) Run(ctx context.Context) error {
	return r.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var userCount, ticketTotal int64
		if err := tx.Model(&models.UserModel{}).Count(&userCount).Error; err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if err := tx.Model(&models.TicketModel{}).Count(&ticketTotal).Error; err != nil {
			return fmt.Errorf("failed to count tickets: %w", err)
		}

		if userCount > 0 || ticketTotal > 0 {
			r.logger.Infow("database not empty, skipping seed",
				"users", userCount, "tickets", ticketTotal)
			return nil
		}

		if err := r.seedUsers(tx); err != nil {
			return err
		}

		return r.seedTickets(tx)
	})
}

func (r *Runner) seedUsers(tx *gorm.DB) error {
	inserted := 0
	for i := range seedUsers {
		u := seedUsers[i]
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&u)
		if result.Error != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, result.Error)
		}
		inserted += int(result.RowsAffected)
	}

	r.logger.Infow("seeded users", "inserted", inserted, "skipped", len(seedUsers)-inserted)
	return nil
}

func (r *Runner) seedTickets(tx *gorm.DB) error {
	advisorIDs, err := userIDsByRole(tx, "advisor")
	if err != nil {
		return err
	}
	studentIDs, err := userIDsByRole(tx, "student")
	if err != nil {
		return err
	}

	if len(studentIDs) == 0 {
		r.logger.Warnw("no student users found after seeding, skipping ticket creation")
		return nil
	}

	now := time.Now().UTC()
	for i := 0; i < ticketCount; i++ {
		authorID := studentIDs[r.rng.Intn(len(studentIDs))]

		var assigneeID *uint
		if len(advisorIDs) > 0 && r.rng.Float64() < 0.6 {
			id := advisorIDs[r.rng.Intn(len(advisorIDs))]
			assigneeID = &id
		}

		department := ticketDepartments[r.rng.Intn(len(ticketDepartments))]

		var priority *int
		if p := r.rng.Intn(4); p > 0 {
			priority = &p
		}

		status := ticketStatuses[r.rng.Intn(len(ticketStatuses))]

		createdAt := now.
			Add(-time.Duration(r.rng.Intn(31)) * 24 * time.Hour).
			Add(-time.Duration(r.rng.Intn(24)) * time.Hour)
		lastUpdated := createdAt.Add(time.Duration(r.rng.Intn(73)) * time.Hour)

		model := models.TicketModel{
			AuthorID:    authorID,
			AssigneeID:  assigneeID,
			Department:  department,
			Priority:    priority,
			Subject:     fmt.Sprintf("Test Ticket %d — %s", i+1, status),
			Message: fmt.Sprintf("This is a seeded test ticket number %d. Status: %s. Department: %s.",
				i+1, status, department),
			Status:      status,
			CreatedAt:   createdAt.UnixMilli(),
			LastUpdated: lastUpdated.UnixMilli(),
		}

		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed ticket %d: %w", i+1, err)
		}
	}

	r.logger.Infow("seeded tickets", "inserted", ticketCount)
	return nil
}

func userIDsByRole(tx *gorm.DB, role string) ([]uint, error) {
	var ids []uint
	if err := tx.Model(&models.UserModel{}).
		Where("role = ?", role).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load %s ids: %w", role, err)
	}
	return ids, nil
}
